package main

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/vovanwin/enumtoggles/internal/generator"
	"github.com/vovanwin/enumtoggles/internal/parser"
	"github.com/vovanwin/enumtoggles/pkg/toggles"
)

// CLI корневая структура команд
type CLI struct {
	Verbose bool `short:"v" help:"Enable verbose logging"`

	Init InitCmd `cmd:"" help:"Создать начальные toggles.toml и toggles.txt"`
	Gen  GenCmd  `cmd:"" help:"Сгенерировать Go перечисление из манифеста"`
	Show ShowCmd `cmd:"" help:"Показать состояние toggle после загрузки файла"`
}

// Globals общие зависимости команд
type Globals struct {
	Logger *slog.Logger
	Out    io.Writer
}

// InitCmd реализует команду init
type InitCmd struct {
	Dir string `short:"d" help:"Директория для файлов" default:"./configs"`
}

func (c *InitCmd) Run(g *Globals) error {
	fmt.Fprintf(g.Out, "Инициализация в %s\n", c.Dir)
	return generator.Init(c.Dir, g.Out)
}

// GenCmd реализует команду gen
type GenCmd struct {
	Manifest string `short:"m" help:"Путь к манифесту" default:"./configs/toggles.toml" type:"path"`
	Output   string `short:"o" help:"Директория для генерации" default:"./internal/features" type:"path"`
	Package  string `short:"p" help:"Имя пакета (по умолчанию из манифеста)"`
	Type     string `short:"t" help:"Имя типа (по умолчанию из манифеста)"`
}

func (c *GenCmd) Run(g *Globals) error {
	m, err := parser.ParseManifest(c.Manifest)
	if err != nil {
		return err
	}

	opts := generator.Options{
		OutputDir:   c.Output,
		PackageName: c.Package,
		TypeName:    c.Type,
	}
	if err := generator.Generate(opts, m); err != nil {
		return err
	}

	fmt.Fprintf(g.Out, "✓ %d toggle → %s\n", len(m.Toggles), filepath.Join(c.Output, generator.OutputFile))
	return nil
}

// ShowCmd реализует команду show
type ShowCmd struct {
	Manifest string `short:"m" help:"Путь к манифесту" default:"./configs/toggles.toml" type:"path"`
	State    string `short:"s" help:"Файл состояния (.txt, .toml, .yaml)" env:"TOGGLES_FILE"`
}

func (c *ShowCmd) Run(g *Globals) error {
	m, err := parser.ParseManifest(c.Manifest)
	if err != nil {
		return err
	}

	kind := toggles.Define(m.Names(), func(s string) string { return s })
	set := toggles.New(kind, toggles.WithLogger(g.Logger))
	if err := set.SetAll(m.Defaults()); err != nil {
		return fmt.Errorf("дефолты манифеста: %w", err)
	}

	if c.State != "" {
		if err := loadState(set, c.State, g.Out); err != nil {
			return err
		}
	}

	fmt.Fprint(g.Out, set)
	return nil
}

// loadState загружает файл состояния и печатает пропущенные строки текстового формата
func loadState(set *toggles.Set[string], path string, out io.Writer) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml", ".yaml", ".yml":
		if err := set.LoadAuto(path); err != nil {
			return fmt.Errorf("файл состояния: %w", err)
		}
		return nil
	}

	rep, err := set.LoadFileReport(path)
	if err != nil {
		return fmt.Errorf("файл состояния: %w", err)
	}
	for _, issue := range rep.Issues {
		fmt.Fprintf(out, "# skipped line %d: %v\n", issue.Line, issue.Reason)
	}
	return nil
}
