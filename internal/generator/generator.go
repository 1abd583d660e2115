package generator

import (
	"bytes"
	"cmp"
	"embed"
	"fmt"
	"go/format"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"unicode"

	"github.com/vovanwin/enumtoggles/internal/model"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// OutputFile имя сгенерированного файла
const OutputFile = "enumtoggles_gen.go"

// Options настройки генерации кода
type Options struct {
	OutputDir   string // Директория для сгенерированного файла
	PackageName string // Имя пакета, пустое — берётся из манифеста
	TypeName    string // Имя типа, пустое — берётся из манифеста
}

// toggleTemplateData данные одного toggle в шаблоне
type toggleTemplateData struct {
	Const       string // Имя константы (FeatureNewCatalogUi)
	Name        string // Имя в файлах состояния
	Default     bool
	Description string
}

// Generate генерирует enumtoggles_gen.go в указанную директорию
func Generate(opts Options, m *model.Manifest) error {
	data := buildTemplateData(opts, m)
	if err := data.validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return fmt.Errorf("создание директории: %w", err)
	}

	return render("templates/toggles.go.tmpl", filepath.Join(opts.OutputDir, OutputFile), data)
}

// templateData данные шаблона toggles.go.tmpl
type templateData struct {
	Package  string
	Type     string
	NamesVar string
	Toggles  []toggleTemplateData
}

func buildTemplateData(opts Options, m *model.Manifest) templateData {
	data := templateData{
		Package: cmp.Or(opts.PackageName, m.Package),
		Type:    cmp.Or(opts.TypeName, m.Type),
		Toggles: make([]toggleTemplateData, 0, len(m.Toggles)),
	}
	data.NamesVar = lowerFirst(data.Type) + "Names"

	for _, t := range m.Toggles {
		data.Toggles = append(data.Toggles, toggleTemplateData{
			Const:       data.Type + t.GoName,
			Name:        t.Name,
			Default:     t.Default,
			Description: t.Description,
		})
	}
	return data
}

// validate проверяет имена после применения переопределений из CLI,
// иначе ошибка всплывёт только при сборке сгенерированного файла
func (d templateData) validate() error {
	if !token.IsIdentifier(d.Package) || strings.ToLower(d.Package) != d.Package {
		return fmt.Errorf("недопустимое имя пакета %q", d.Package)
	}
	if !token.IsIdentifier(d.Type) || !token.IsExported(d.Type) {
		return fmt.Errorf("имя типа %q должно быть экспортируемым идентификатором", d.Type)
	}

	declared := map[string]string{
		d.Type:                 "тип",
		d.Type + "Kind":        "переменная Kind",
		d.Type + "Values":      "функция Values",
		"New" + d.Type + "Set": "конструктор",
		d.NamesVar:             "таблица имён",
	}
	for _, t := range d.Toggles {
		if what, ok := declared[t.Const]; ok {
			return fmt.Errorf("toggle %q: константа %s совпадает с именем (%s)", t.Name, t.Const, what)
		}
		declared[t.Const] = fmt.Sprintf("toggle %q", t.Name)
	}
	return nil
}

// formatComment превращает многострочное описание в строки комментария
func formatComment(text string) string {
	return "// " + strings.ReplaceAll(text, "\n", "\n// ")
}

func lowerFirst(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

// render исполняет шаблон и пишет результат через gofmt.
// Неформатируемый вывод всё равно записывается, чтобы его можно было посмотреть.
func render(tmplFile, outFile string, data templateData) error {
	tmpl, err := template.New(filepath.Base(tmplFile)).
		Funcs(template.FuncMap{"formatComment": formatComment}).
		ParseFS(templatesFS, tmplFile)
	if err != nil {
		return fmt.Errorf("шаблон %s: %w", tmplFile, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("выполнение %s: %w", tmplFile, err)
	}

	src, fmtErr := format.Source(buf.Bytes())
	if fmtErr != nil {
		src = buf.Bytes()
	}
	if err := os.WriteFile(outFile, src, 0o644); err != nil {
		return fmt.Errorf("запись %s: %w", outFile, err)
	}
	if fmtErr != nil {
		return fmt.Errorf("форматирование %s: %w", outFile, fmtErr)
	}
	return nil
}
