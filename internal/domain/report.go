package domain

// RunSummary 是一次运行的统计结果，仅用于 stderr 摘要输出，
// 不写入产物（产物必须对相同输入逐字节一致）。
type RunSummary struct {
	// Files 是扫描到的候选节点文件数。
	Files int
	// Scenes 是 level 数据中的场景总数。
	Scenes int
	// Matched 是最终写入产物的条目数（(level, scene) 去重后）。
	Matched int
	// Skipped 是没有匹配到任何文件的场景数（静默跳过，不是错误）。
	Skipped int
	// Collisions 是多个文件推导出同一标识的次数（保留排序后最后一个）。
	Collisions int
}
