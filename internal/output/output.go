// Package output 负责把聚合结果编码成 blocked_nodes.json 的字节内容。
package output

import (
	"encoding/json"

	"github.com/John-Robertt/BNG/internal/domain"
)

// ArtifactName 是产物文件名，固定写到当前工作目录。
const ArtifactName = "blocked_nodes.json"

// Encode 序列化产物。
//
// 规则：
// - minify=false：2 空格缩进的 pretty 输出
// - minify=true：无多余空白
// - entries 为空时输出 {"blocked_node_data":[]}（不是 null）
// - 末尾补一个换行；两种模式对相同输入均逐字节稳定
func Encode(entries []domain.ResultEntry, minify bool) ([]byte, error) {
	if entries == nil {
		entries = make([]domain.ResultEntry, 0)
	}
	artifact := domain.Artifact{BlockedNodeData: entries}

	var (
		b   []byte
		err error
	)
	if minify {
		b, err = json.Marshal(artifact)
	} else {
		b, err = json.MarshalIndent(artifact, "", "  ")
	}
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}
