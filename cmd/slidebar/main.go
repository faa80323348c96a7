package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ivlev/slidebar/internal/analyzer"
	"github.com/ivlev/slidebar/internal/bar"
	"github.com/ivlev/slidebar/internal/config"
	"github.com/ivlev/slidebar/internal/overlay"
	"github.com/ivlev/slidebar/internal/preview"
	"github.com/ivlev/slidebar/internal/source"
	"github.com/ivlev/slidebar/internal/system"
	"github.com/ivlev/slidebar/internal/tagstore"
)

func main() {
	catalog := bar.NewBuiltinCatalog()

	flags := config.Default()
	flags.RegisterFlags(flag.CommandLine)
	flag.Parse()

	// Пути и ресурсы: умолчания, файл, флаги
	run := config.Default()
	if flags.ConfigPath != "" {
		if err := run.LoadFile(flags.ConfigPath); err != nil {
			log.Fatalf("[-] Ошибка конфигурации: %v", err)
		}
	}
	run.ApplyFlags(flag.CommandLine, flags)

	inputPath := run.InputPath
	if inputPath == "" {
		latest, err := system.FindLatestPDF("input/pdf")
		if err != nil {
			log.Fatalf("[-] Ошибка: %v. Положите PDF в input/pdf/", err)
		}
		inputPath = latest
		fmt.Printf("[*] Выбран файл: %s\n", inputPath)
	}

	src, err := source.Open(inputPath)
	if err != nil {
		log.Fatalf("[-] Ошибка инициализации источника: %v", err)
	}
	defer src.Close()

	deck := source.NewDeck(src, run.Hidden)
	workers := system.RecommendedWorkers(run.Workers)

	model := bar.NewModel(catalog)
	view := overlay.NewView(deck, overlay.Options{
		OutputDir: run.OutputDir,
		DPI:       run.DPI,
		Workers:   workers,
		Checker:   analyzer.NewOcclusionChecker(),
	})
	view.Register(model)
	model.SubscribeAll(func(ev bar.Event) error {
		if ev.Kind == bar.EventBarCreated || ev.Kind == bar.EventBarRemoved || ev.Kind == bar.EventBarDetected || ev.Kind == bar.EventThemeChanged {
			fmt.Printf("[*] %s\n", ev.Kind)
		}
		return nil
	})

	store := tagstore.NewFileStore(tagstore.SidecarPath(run.OutputDir))
	ctrl := bar.NewController(model, store)
	ctrl.SetFrames(deck)

	for _, setup := range []func() error{ctrl.SetupColors, ctrl.SetupSizes, ctrl.SetupRegisteredBars} {
		if err := setup(); err != nil {
			log.Fatalf("[-] Ошибка инициализации: %v", err)
		}
	}

	found, err := ctrl.LoadBarFromMetadata()
	if err != nil {
		log.Printf("[!] Сохраненный прогресс-бар не прочитан: %v", err)
	}
	if err := view.SlidesChanged(ctrl); err != nil {
		log.Printf("[!] %v", err)
	}

	// Стиль: умолчания, сохраненный бар, файл, флаги
	cfg := config.Default()
	if ab, err := model.CurrentBar(); err == nil {
		cfg.ApplyBar(ab)
	}
	if flags.ConfigPath != "" {
		if err := cfg.LoadFile(flags.ConfigPath); err != nil {
			log.Fatalf("[-] Ошибка конфигурации: %v", err)
		}
	}
	cfg.ApplyFlags(flag.CommandLine, flags)
	if err := cfg.Validate(catalog); err != nil {
		log.Fatalf("[-] Ошибка конфигурации: %v", err)
	}

	if err := act(ctrl, deck, cfg); err != nil {
		log.Fatalf("[-] Ошибка: %v", err)
	}

	if model.HasBar() {
		if err := ctrl.SaveBarToMetadata(); err != nil {
			log.Fatalf("[-] Ошибка сохранения: %v", err)
		}
		fmt.Printf("[+++] Успех! Слайды: %s\n", run.OutputDir)
	} else if found {
		if err := store.Delete(); err != nil {
			log.Printf("[!] %v", err)
		}
	}
}

func act(ctrl *bar.Controller, deck *source.Deck, cfg *config.Config) error {
	model := ctrl.Model()
	theme, err := pickTheme(model, cfg)
	if err != nil {
		return err
	}

	switch cfg.Action {
	case config.ActionAdd:
		if err := applyStyle(model, cfg, theme); err != nil {
			return err
		}
		return ctrl.AddBarClicked(theme.Key())

	case config.ActionRefresh:
		if !model.HasBar() {
			return bar.ErrNoActiveBar
		}
		if err := applyStyle(model, cfg, theme); err != nil {
			return err
		}
		if err := ctrl.RemoveBarClicked(); err != nil {
			return err
		}
		return ctrl.AddBarClicked(theme.Key())

	case config.ActionRemove:
		if !model.HasBar() {
			fmt.Println("[*] Прогресс-бар не найден")
			return nil
		}
		return ctrl.RemoveBarClicked()

	case config.ActionPreview:
		ab, err := styled(cfg, theme)
		if err != nil {
			return err
		}
		return printBar(deck, ab, cfg.Columns)

	default:
		ab, err := model.CurrentBar()
		if errors.Is(err, bar.ErrNoActiveBar) {
			fmt.Println("[*] Прогресс-бар не найден")
			return nil
		}
		return printBar(deck, ab, cfg.Columns)
	}
}

// pickTheme is the configured theme, else the first registered one
func pickTheme(model *bar.Model, cfg *config.Config) (bar.Theme, error) {
	if cfg.Theme != "" {
		return model.Catalog().Lookup(cfg.Theme)
	}
	themes, err := model.RegisteredBars()
	if err != nil {
		return nil, err
	}
	return themes[0], nil
}

// styled builds the bar cfg describes without touching the model
func styled(cfg *config.Config, theme bar.Theme) (bar.ActiveBar, error) {
	pos, err := position(cfg, theme)
	if err != nil {
		return bar.ActiveBar{}, err
	}
	return bar.ActiveBar{
		Theme:     theme,
		Position:  pos,
		Size:      cfg.Size,
		Colors:    cfg.Colors(),
		SkipFirst: cfg.SkipFirst,
	}, nil
}

func position(cfg *config.Config, theme bar.Theme) (bar.PositionOptions, error) {
	t, err := cfg.Toggles()
	if err != nil {
		return bar.PositionOptions{}, err
	}
	pos, err := bar.ResolvePosition(theme.Constraints(), t)
	if err != nil {
		return bar.PositionOptions{}, err
	}
	if pos.Toggles() == (bar.Toggles{}) {
		pos = bar.DefaultPosition(theme.Constraints())
	}
	return pos, nil
}

func applyStyle(model *bar.Model, cfg *config.Config, theme bar.Theme) error {
	pos, err := position(cfg, theme)
	if err != nil {
		return err
	}
	if err := model.SetColors(cfg.Colors()); err != nil {
		return err
	}
	if err := model.SetSize(cfg.Size); err != nil {
		return err
	}
	if err := model.SetSkipFirst(cfg.SkipFirst); err != nil {
		return err
	}
	return model.SetPositionOptions(pos)
}

func printBar(deck *source.Deck, ab bar.ActiveBar, columns int) error {
	frames, err := deck.VisibleFrames()
	if err != nil {
		return err
	}
	if len(frames) == 0 {
		return bar.ErrNoFrames
	}
	w, h, err := deck.FrameSequenceSize()
	if err != nil {
		return err
	}
	return preview.Write(os.Stdout, ab, len(frames), w, h, columns)
}
