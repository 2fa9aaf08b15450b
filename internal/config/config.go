package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/John-Robertt/BNG/internal/domain"
)

// ConfigName 是可选配置文件名，位置固定在 <root_dir>/bng.json。
const ConfigName = "bng.json"

// CLIArgs 保留 CLI 暴露的入口，以及 --min 是否显式指定的信息。
// 这能保证覆盖优先级可实现：--min=false 必须能覆盖配置里的 min=true。
type CLIArgs struct {
	RootDir       string
	LevelDataFile string

	Min    bool
	MinSet bool
}

// FileConfig 对应 bng.json 的解析结构。
type FileConfig struct {
	ExcludeDirs []string `json:"exclude_dirs"`
	Min         *bool    `json:"min"`
}

// EffectiveConfig 是合并后的最终配置（实现层直接消费，不再做二次默认判断）。
type EffectiveConfig struct {
	RootDir       string // 绝对路径
	LevelDataFile string // 绝对路径

	Min         bool
	ExcludeDirs []string
}

// LoadEffective 读取 <root_dir>/bng.json（可选），与 CLI 参数合并。
//
// 覆盖优先级（固定）：
// - min：CLI --min/--min=false > config > 默认 false
// - exclude_dirs：仅由 config 控制（CLI 不暴露）
func LoadEffective(cwd string, cli CLIArgs) (EffectiveConfig, error) {
	cwdAbs, err := filepath.Abs(cwd)
	if err != nil {
		return EffectiveConfig{}, &domain.InputError{Code: domain.ErrCodeConfigInvalid, Path: cwd, Err: err}
	}

	rootAbs := absCleanFrom(cwdAbs, cli.RootDir)
	levelAbs := absCleanFrom(cwdAbs, cli.LevelDataFile)

	cfgPath := filepath.Join(rootAbs, ConfigName)
	fc, err := readFileConfig(cfgPath)
	if err != nil {
		return EffectiveConfig{}, &domain.InputError{Code: domain.ErrCodeConfigInvalid, Path: cfgPath, Err: err}
	}

	min := false
	if cli.MinSet {
		min = cli.Min
	} else if fc.Min != nil {
		min = *fc.Min
	}

	return EffectiveConfig{
		RootDir:       rootAbs,
		LevelDataFile: levelAbs,
		Min:           min,
		ExcludeDirs:   append([]string(nil), fc.ExcludeDirs...),
	}, nil
}

// absCleanFrom 以 base 为基准，把 p 变为 clean + absolute。
func absCleanFrom(base, p string) string {
	p = filepath.Clean(strings.TrimSpace(p))
	if p == "" {
		return ""
	}
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Clean(filepath.Join(base, p))
}

// readFileConfig 读取并解析 bng.json；文件不存在不算错误。
func readFileConfig(path string) (FileConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, err
	}
	var fc FileConfig
	if err := json.Unmarshal(b, &fc); err != nil {
		return FileConfig{}, err
	}
	return fc, nil
}
