package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/ayn2op/wheel"
	"github.com/ayn2op/wheel/daytime"
	"github.com/ayn2op/wheel/help"
	"github.com/ayn2op/wheel/internal/config"
)

var weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

func main() {
	configPath := flag.String("config", "", "path to config.toml (default $XDG_CONFIG_HOME/wheeldemo/config.toml)")
	logPath := flag.String("log", "", "write a diagnostic log to this file")
	flag.Parse()

	if err := run(*configPath, *logPath); err != nil {
		log.Fatal(err)
	}
}

func run(configPath, logPath string) error {
	// The terminal belongs to the UI, so logs go to a file or nowhere.
	log.SetOutput(io.Discard)
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg.ApplyTheme()

	app := wheel.NewApplication()
	wheelCfg := cfg.WheelConfig()
	wheelCfg.Scheduler = app

	opts := daytime.DefaultOptions()
	opts.Wheel = wheelCfg
	opts.Is24Hour = cfg.DayTime.Is24Hour
	opts.NewTicker = func() wheel.AnimationTicker { return app.NewFrameTicker() }
	keys := cfg.DayTimeKeyMap()
	opts.Keys = &keys
	picker, err := daytime.New(opts)
	if err != nil {
		return err
	}
	defer picker.Close()

	now := time.Now()
	start := now.Truncate(daytime.MinuteStep * time.Minute).Add(daytime.MinuteStep * time.Minute)
	dayFormat := cfg.DayTime.DayFormat
	if err := picker.SetDateTimeParams(start, start, cfg.DayTime.Days, func(day time.Time) string {
		return day.Format(dayFormat)
	}); err != nil {
		return err
	}

	weekdayCfg := wheelCfg
	weekdayCfg.Values = weekdays
	weekdayCfg.Wrapping = true
	weekdayCfg.InitialIndex = (int(now.Weekday()) + 6) % 7
	weekdayCfg.Ticker = app.NewFrameTicker()
	weekday, err := wheel.New(weekdayCfg)
	if err != nil {
		return err
	}
	defer weekday.Close()

	if cfg.Wheel.CenterMarker {
		marker := cfg.WheelStyles().Marker
		for _, c := range []daytime.Column{daytime.ColumnDay, daytime.ColumnHour, daytime.ColumnMinute, daytime.ColumnAmPm} {
			picker.Column(c).SetCenterMarker(true, marker)
		}
		weekday.SetCenterMarker(true, marker)
	}

	helpBar := help.New()
	helpBar.SetKeyMaps(weekday.KeyMap(), picker.KeyMap(), quitKeyMap{cfg.QuitKeybind()})

	root := newLayout(picker, weekday, helpBar, cfg.QuitKeybind())
	root.showTime(picker.SelectedTime())
	root.showWeekday(weekday.SelectedValue())

	picker.SetChangedFunc(func(t time.Time) {
		log.Printf("selected %s", t.Format(time.RFC3339))
		root.showTime(t)
	})
	weekday.SetChangedFunc(func(index int) {
		log.Printf("weekday %d %s", index, weekdays[index])
		root.showWeekday(weekdays[index])
	})

	log.Printf("starting, start time %s", start.Format(time.RFC3339))
	if err := app.SetRoot(root).Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	log.Printf("stopped")
	return nil
}
