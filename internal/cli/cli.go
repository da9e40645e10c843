package cli

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"netmenu/internal/command"
	"netmenu/internal/config"
	"netmenu/internal/logging"
	"netmenu/internal/menu"
	"netmenu/internal/netif"
	"netmenu/internal/paths"
	"netmenu/internal/ui"
	"netmenu/internal/version"
)

func Run(app string, args []string) int {
	logger := logging.New()

	fs := flag.NewFlagSet(app, flag.ContinueOnError)
	fs.SetOutput(os.Stdout)
	configPath := fs.String("config", "", "path to config file")
	wifiInterface := fs.String("wifi-interface", "", "wireless interface (default: autodetect)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cmd := "menu"
	if rest := fs.Args(); len(rest) > 0 {
		cmd = rest[0]
	}

	resolvedConfigPath := *configPath
	if resolvedConfigPath == "" {
		var err error
		resolvedConfigPath, err = paths.ConfigPath()
		if err != nil {
			logger.Printf("config path: %v", err)
			return 1
		}
	}
	if err := config.EnsureDefault(resolvedConfigPath); err != nil {
		logger.Printf("write default config: %v", err)
		return 1
	}
	cfg, err := config.LoadOptional(resolvedConfigPath)
	if err != nil {
		logger.Printf("config error: %v", err)
		return 1
	}

	iface := *wifiInterface
	if iface == "" {
		iface = cfg.Wifi.Interface
	}
	if iface == "" {
		iface = netif.DetectWifiInterface()
	}

	runner := command.RealRunner{}
	avail := DetectAvailability(command.Installed, iface)

	switch cmd {
	case "menu":
		return runMenu(logger, runner, cfg, avail, resolvedConfigPath)
	case "list":
		reg, err := buildRegistry(runner, cfg, avail)
		if err != nil {
			logger.Printf("build menu: %v", err)
			return 1
		}
		for _, line := range reg.displays() {
			fmt.Println(line)
		}
		return 0
	case "doctor":
		fmt.Print(formatDoctor(runDoctor(command.Installed, cfg)))
		return 0
	case "version":
		fmt.Printf("%s %s\n", app, version.Version)
		return 0
	default:
		usage(app)
		return 2
	}
}

func runMenu(logger *log.Logger, runner command.Runner, cfg config.Config, avail Availability, configPath string) int {
	reg, err := buildRegistry(runner, cfg, avail)
	if err != nil {
		logger.Printf("build menu: %v", err)
		return 1
	}
	if len(reg.actions) == 0 {
		logger.Printf("nothing to show: no supported tools found and no custom actions configured")
		return 1
	}

	selected, err := pickEntry(logger, runner, &cfg, avail, &reg, configPath)
	if err != nil {
		logger.Printf("menu: %v", err)
		return 1
	}
	if selected == "" {
		return 0
	}

	action, err := menu.Resolve(reg.actions, selected)
	if err != nil {
		logger.Printf("resolve selection %q: %v", selected, err)
		return 1
	}

	d := &dispatcher{
		runner:      runner,
		cfg:         cfg,
		avail:       avail,
		btConnected: reg.btConnected,
		httpClient:  &http.Client{Timeout: 10 * time.Second},
	}
	ok, err := d.dispatch(action)
	if err != nil {
		logger.Printf("dispatch: %v", err)
		return 1
	}
	if !ok {
		logger.Printf("action failed: %s", selected)
		return 1
	}
	return 0
}

// pickEntry shows the menu through the configured launcher, or through
// the built-in picker when the launcher is "builtin" or missing. The
// built-in picker watches the config file and rebuilds the registry on
// edits, so reg may point at a fresher build afterwards.
func pickEntry(logger *log.Logger, runner command.Runner, cfg *config.Config, avail Availability, reg *registry, configPath string) (string, error) {
	if cfg.Menu.Command != "builtin" {
		argv, err := menu.SplitCommand(cfg.Menu.Command)
		if err != nil {
			return "", err
		}
		if command.Installed(argv[0]) {
			return menu.Launch(argv, reg.displays())
		}
		logger.Printf("%s not installed, falling back to builtin picker", argv[0])
	}

	reload := func() ([]string, error) {
		fresh, err := config.LoadOptional(configPath)
		if err != nil {
			return nil, err
		}
		rebuilt, err := buildRegistry(runner, fresh, avail)
		if err != nil {
			return nil, err
		}
		*cfg = fresh
		*reg = rebuilt
		return rebuilt.displays(), nil
	}

	changes, stop, err := ui.WatchFile(configPath)
	if err != nil {
		changes = nil
	} else {
		defer stop()
	}
	return ui.Pick(reg.displays(), reload, changes)
}

func usage(app string) {
	fmt.Printf(`%s - network menu launcher

Usage:
  %s [flags] [command]

Commands:
  menu      show the menu and run the picked action (default)
  list      print the menu entries without launching a picker
  doctor    report on external tools and configuration
  version   print the version

Flags:
  -config string           path to config file
  -wifi-interface string   wireless interface (default: autodetect)
`, app, app)
}
