package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ID 是 level/scene 的标识。JSON 里既可能是字符串也可能是数字，
// 两种形态都要原样写回输出（例如 1.0 不能变成 1）。
//
// 约束：
// - raw 保留输入的原始字节，MarshalJSON 直接透传
// - 排序规则见 Less：数字按数值、字符串按字典序、数字排在字符串前
type ID struct {
	raw  string
	str  string
	num  float64
	kind idKind
}

type idKind int

const (
	kindNumber idKind = iota
	kindString
)

func (id *ID) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "" || s == "null" {
		return fmt.Errorf("id 不能为空")
	}

	if s[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*id = ID{raw: s, str: v, kind: kindString}
		return nil
	}

	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("id 只能是字符串或数字，实际是 %s", s)
	}
	*id = ID{raw: s, num: n, kind: kindNumber}
	return nil
}

func (id ID) MarshalJSON() ([]byte, error) {
	if id.raw == "" {
		return nil, fmt.Errorf("id 未初始化")
	}
	return []byte(id.raw), nil
}

// IsZero 表示该 id 从未被赋值（JSON 字段缺失）。
func (id ID) IsZero() bool { return id.raw == "" }

// Key 返回可作为 map key 的规范形式。
// 原始字节足够区分类型：数字 1 是 "1"，字符串 "1" 是 "\"1\""。
func (id ID) Key() string { return id.raw }

// Less 定义输出排序用的全序。
// 混合类型时数字排在字符串之前（原始脚本在混合输入上会直接崩溃，
// 这里选择给出确定顺序而不是报错；同类型输入行为不变）。
func (id ID) Less(other ID) bool {
	if id.kind != other.kind {
		return id.kind == kindNumber
	}
	if id.kind == kindNumber {
		return id.num < other.num
	}
	return id.str < other.str
}

// String 用于诊断信息；字符串 id 去掉引号，数字保持原样。
func (id ID) String() string {
	if id.kind == kindString {
		return id.str
	}
	return id.raw
}
