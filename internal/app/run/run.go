// Package run 串联一次完整的生成流程：
// 扫描 → 加载 level 数据 → 匹配聚合 → 编码 → 原子写出产物。
//
// 流程是单线程、同步、一次性的：任何 I/O 或解析失败都会在写产物之前
// 中止整次运行，失败的运行不会留下部分/损坏的 blocked_nodes.json。
package run

import (
	"fmt"
	"os"

	"github.com/John-Robertt/BNG/internal/app"
	"github.com/John-Robertt/BNG/internal/config"
	"github.com/John-Robertt/BNG/internal/domain"
	"github.com/John-Robertt/BNG/internal/infra/fsx"
	"github.com/John-Robertt/BNG/internal/leveldata"
	"github.com/John-Robertt/BNG/internal/output"
	"github.com/John-Robertt/BNG/internal/scan"
)

// Execute 执行一次生成，产物写入 outDir/blocked_nodes.json。
// 成功返回运行摘要；失败返回带 error_code 的错误（见 internal/domain）。
func Execute(eff config.EffectiveConfig, outDir string) (domain.RunSummary, error) {
	if err := checkRootDir(eff.RootDir); err != nil {
		return domain.RunSummary{}, err
	}

	files, err := scan.ScanNodeFiles(eff.RootDir, eff.ExcludeDirs)
	if err != nil {
		return domain.RunSummary{}, &domain.InputError{Code: domain.ErrCodeIOFailed, Path: eff.RootDir, Err: err}
	}

	ds, err := leveldata.Load(eff.LevelDataFile)
	if err != nil {
		return domain.RunSummary{}, err
	}

	entries, sum, err := app.Aggregate(ds, files)
	if err != nil {
		return domain.RunSummary{}, err
	}

	b, err := output.Encode(entries, eff.Min)
	if err != nil {
		return domain.RunSummary{}, &domain.InputError{Code: domain.ErrCodeIOFailed, Path: output.ArtifactName, Err: err}
	}

	if err := fsx.WriteFileAtomicReplace(outDir, output.ArtifactName, b); err != nil {
		return domain.RunSummary{}, &domain.InputError{Code: domain.ErrCodeIOFailed, Path: output.ArtifactName, Err: err}
	}

	return sum, nil
}

func checkRootDir(root string) error {
	fi, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return &domain.InputError{Code: domain.ErrCodeNotFound, Path: root, Err: err}
		}
		return &domain.InputError{Code: domain.ErrCodeIOFailed, Path: root, Err: err}
	}
	if !fi.IsDir() {
		return &domain.InputError{Code: domain.ErrCodeNotFound, Path: root, Err: fmt.Errorf("不是目录")}
	}
	return nil
}
