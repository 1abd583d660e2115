package generator

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
)

var initFiles = map[string]string{
	"toggles.toml": `# toggles.toml — список toggle, порядок объявления задаёт ординалы
# Не переставляйте записи: сгенерированные константы зависят от порядка

package = "features"
type = "Feature"

[[toggles]]
name = "new_catalog_ui"
description = "Новый UI каталога"
default = false

[[toggles]]
name = "fast_checkout"
description = "Оформление заказа в один шаг"
default = true
`,

	"toggles.txt": `# toggles.txt — состояние toggle: <0|1> <name>
1 new_catalog_ui
0 fast_checkout
`,
}

// Init создаёт начальные файлы toggle в указанной директории
func Init(dir string, out io.Writer) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("создание директории %s: %w", dir, err)
	}

	names := make([]string, 0, len(initFiles))
	for name := range initFiles {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			fmt.Fprintf(out, "  skip: %s (already exists)\n", name)
			continue
		}
		if err := os.WriteFile(path, []byte(initFiles[name]), 0o644); err != nil {
			return fmt.Errorf("запись %s: %w", name, err)
		}
		fmt.Fprintf(out, "  created: %s\n", name)
	}

	return nil
}
