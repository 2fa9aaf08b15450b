// Package match 把场景的 background 引用解析到扫描出的文件标识。
//
// 统一采用 prefix-with-boundary 策略（而不是早期的子串包含）：
// 不依赖扫描顺序，且探针 "room1" 不会误中标识 "room10"。
package match

import (
	"sort"
	"strings"

	"github.com/John-Robertt/BNG/internal/domain"
)

// Probe 从 background 引用推导匹配探针。
//
// 推导步骤：
// - 取最后一个空白分隔的 token（"B alpha-night.png" → "alpha-night.png"）
// - 去掉首个 '.' 起的扩展名（→ "alpha-night"），得到 base
// - 去掉末尾一段 "-suffix"（→ "alpha"），得到 probe
//
// base 为空（background 为空或只有空白）时 ok=false。
func Probe(background string) (base, probe string, ok bool) {
	fields := strings.Fields(background)
	if len(fields) == 0 {
		return "", "", false
	}
	token := fields[len(fields)-1]

	base = token
	if i := strings.Index(base, "."); i >= 0 {
		base = base[:i]
	}
	if base == "" {
		return "", "", false
	}

	probe = base
	if j := strings.LastIndex(base, "-"); j > 0 {
		probe = base[:j]
	}
	return base, probe, true
}

// Resolve 在标识索引里查找 background 对应的文件。
//
// 解析优先级：
// 1) base 精确命中（后缀未截断的形态优先，避免 "alpha-v3" 落到 "alpha-v2"）
// 2) probe 精确命中
// 3) 以 probe+"-" 为前缀的标识中，字典序最小的一个
//
// 无匹配不是错误：场景被静默跳过，不产出条目。
func Resolve(background string, index map[string]domain.NodeFile) (domain.NodeFile, bool) {
	base, probe, ok := Probe(background)
	if !ok {
		return domain.NodeFile{}, false
	}

	if f, ok := index[base]; ok {
		return f, true
	}
	if f, ok := index[probe]; ok {
		return f, true
	}

	bound := probe + "-"
	candidates := make([]string, 0, 2)
	for name := range index {
		if strings.HasPrefix(name, bound) {
			candidates = append(candidates, name)
		}
	}
	if len(candidates) == 0 {
		return domain.NodeFile{}, false
	}
	sort.Strings(candidates)
	return index[candidates[0]], true
}
