// Package leveldata 负责加载 level_data.json。
//
// 只做结构化访问需要的最小解析：顶层必须有 levels 数组；
// 场景缺 id/background 等字段不预校验，由使用处自然落空（无匹配）。
package leveldata

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/John-Robertt/BNG/internal/domain"
)

// Load 读取并解析 level 数据文件。
// 文件不存在 → not_found；JSON 非法或缺少顶层 levels → malformed_input。
func Load(path string) (domain.LevelDataset, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.LevelDataset{}, &domain.InputError{Code: domain.ErrCodeNotFound, Path: path, Err: err}
		}
		return domain.LevelDataset{}, &domain.InputError{Code: domain.ErrCodeIOFailed, Path: path, Err: err}
	}

	// Levels 用指针区分「字段缺失/null」与「空数组」：前者是输入错误。
	var doc struct {
		Levels *[]domain.Level `json:"levels"`
	}
	if err := json.Unmarshal(b, &doc); err != nil {
		return domain.LevelDataset{}, &domain.InputError{Code: domain.ErrCodeMalformedInput, Path: path, Err: err}
	}
	if doc.Levels == nil {
		return domain.LevelDataset{}, &domain.InputError{
			Code: domain.ErrCodeMalformedInput,
			Path: path,
			Err:  fmt.Errorf("缺少顶层 levels 字段"),
		}
	}

	return domain.LevelDataset{Levels: *doc.Levels}, nil
}
