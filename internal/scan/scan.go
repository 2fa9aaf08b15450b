package scan

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/John-Robertt/BNG/internal/domain"
)

const (
	// namePrefix 是候选文件名的固定前缀（大小写敏感，含尾随空格）。
	namePrefix = "P "
	nameExt    = ".txt"
)

// ScanNodeFiles 递归扫描 root 下的节点文件。
//
// 规则：
// - 只收 "P <name>.txt"（前缀与扩展名均精确匹配）
// - 标识取 "P " 之后、首个 '.' 之前的子串；连字符保留
//   （"P foo-v2.txt" 的标识是 "foo-v2"，后缀截断由 matcher 对 background 做）
// - excludeDirs 来自配置文件，均视为相对 root 的路径（绝对路径按绝对处理）
//
// 结果按 RelPath 排序，保证不同平台/文件系统下行为一致。
func ScanNodeFiles(root string, excludeDirs []string) ([]domain.NodeFile, error) {
	root = filepath.Clean(root)
	excluded := buildExcluded(root, excludeDirs)

	files := make([]domain.NodeFile, 0, 32)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		if isExcluded(path, excluded) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			return nil
		}

		name, ok := deriveName(d.Name())
		if !ok {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		files = append(files, domain.NodeFile{
			Name:    name,
			AbsPath: path,
			RelPath: rel,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(files, func(i, j int) bool { return files[i].RelPath < files[j].RelPath })
	return files, nil
}

// deriveName 从文件名推导标识；不符合 "P <name>.txt" 模式时 ok=false。
func deriveName(base string) (string, bool) {
	if !strings.HasPrefix(base, namePrefix) || !strings.HasSuffix(base, nameExt) {
		return "", false
	}
	rest := base[len(namePrefix):]
	name := rest[:strings.Index(rest, ".")]
	if name == "" {
		return "", false
	}
	return name, true
}

// Index 把扫描结果构建为 标识 → 文件 的映射。
// 同一标识被多个文件占用时保留排序后最后一个，并统计碰撞次数
// （原始脚本静默覆盖；这里至少把次数带进运行摘要）。
func Index(files []domain.NodeFile) (map[string]domain.NodeFile, int) {
	index := make(map[string]domain.NodeFile, len(files))
	collisions := 0
	for _, f := range files {
		if _, ok := index[f.Name]; ok {
			collisions++
		}
		index[f.Name] = f
	}
	return index, collisions
}

func buildExcluded(root string, excludeDirs []string) []string {
	excluded := make([]string, 0, len(excludeDirs))
	for _, x := range excludeDirs {
		x = strings.TrimSpace(x)
		if x == "" {
			continue
		}
		if filepath.IsAbs(x) {
			excluded = append(excluded, filepath.Clean(x))
			continue
		}
		excluded = append(excluded, filepath.Clean(filepath.Join(root, x)))
	}
	sort.Strings(excluded)
	return excluded
}

func isExcluded(path string, excluded []string) bool {
	path = filepath.Clean(path)
	for _, base := range excluded {
		if isUnder(path, base) {
			return true
		}
	}
	return false
}

func isUnder(path, base string) bool {
	if path == base {
		return true
	}
	sep := string(filepath.Separator)
	return strings.HasPrefix(path, base+sep)
}
