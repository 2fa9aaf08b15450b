// Package nodes 读取单个节点文件（"P <name>.txt"）的内容。
package nodes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/John-Robertt/BNG/internal/domain"
)

// Load 加载一个 blocked-node 列表。
//
// 规则：
// - 去除首尾空白后为空 → 空列表（不是错误）
// - 否则必须是 JSON 数组；元素原样保留（json.RawMessage），
//   保证节点标识（字符串/数字均可）逐字节写回产物
func Load(path string) ([]json.RawMessage, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &domain.InputError{Code: domain.ErrCodeNotFound, Path: path, Err: err}
		}
		return nil, &domain.InputError{Code: domain.ErrCodeIOFailed, Path: path, Err: err}
	}

	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return make([]json.RawMessage, 0), nil
	}

	if b[0] != '[' {
		return nil, &domain.InputError{
			Code: domain.ErrCodeMalformedInput,
			Path: path,
			Err:  fmt.Errorf("期望 JSON 数组"),
		}
	}

	var list []json.RawMessage
	if err := json.Unmarshal(b, &list); err != nil {
		return nil, &domain.InputError{Code: domain.ErrCodeMalformedInput, Path: path, Err: err}
	}
	if list == nil {
		list = make([]json.RawMessage, 0)
	}
	return list, nil
}
