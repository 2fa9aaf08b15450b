package app

import (
	"sort"

	"github.com/John-Robertt/BNG/internal/domain"
	"github.com/John-Robertt/BNG/internal/match"
	"github.com/John-Robertt/BNG/internal/nodes"
	"github.com/John-Robertt/BNG/internal/scan"
)

// entryKey 是 (level id, scene id) 复合键。
// 用 ID 的原始字节做键：数字 1 与字符串 "1" 不会互相覆盖。
type entryKey struct {
	level string
	scene string
}

// Aggregate 对每个场景执行 匹配 → 加载 → 归并。
//
// - 累积结构以 (level id, scene id) 为键，重复键后写覆盖（last wins）
// - 无匹配的场景静默跳过，不产出条目（也不是空列表条目）
// - 结果按 level id、scene id 升序排序（见 domain.ID.Less）
//
// 任一节点文件加载失败即中止整次聚合（不做部分结果）。
func Aggregate(ds domain.LevelDataset, files []domain.NodeFile) ([]domain.ResultEntry, domain.RunSummary, error) {
	index, collisions := scan.Index(files)

	sum := domain.RunSummary{
		Files:      len(files),
		Collisions: collisions,
	}

	acc := make(map[entryKey]domain.ResultEntry, 32)
	for _, level := range ds.Levels {
		for _, scene := range level.Scenes {
			sum.Scenes++

			f, ok := match.Resolve(scene.Background, index)
			if !ok {
				sum.Skipped++
				continue
			}

			list, err := nodes.Load(f.AbsPath)
			if err != nil {
				return nil, domain.RunSummary{}, err
			}

			acc[entryKey{level: level.ID.Key(), scene: scene.ID.Key()}] = domain.ResultEntry{
				LevelID:      level.ID,
				SceneID:      scene.ID,
				BlockedNodes: list,
			}
		}
	}

	entries := make([]domain.ResultEntry, 0, len(acc))
	for _, e := range acc {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].LevelID.Less(entries[j].LevelID) {
			return true
		}
		if entries[j].LevelID.Less(entries[i].LevelID) {
			return false
		}
		return entries[i].SceneID.Less(entries[j].SceneID)
	})

	sum.Matched = len(entries)
	return entries, sum, nil
}
