package domain

import "encoding/json"

// LevelDataset 是 level_data.json 解析后的只读结构，每次运行加载一次。
type LevelDataset struct {
	Levels []Level `json:"levels"`
}

type Level struct {
	ID     ID      `json:"id"`
	Scenes []Scene `json:"scenes"`
}

// Scene 的 Background 是与扫描文件做关联的 join key，
// 形如 "B <name>[-suffix].<ext>"。
type Scene struct {
	ID         ID     `json:"id"`
	Background string `json:"background"`
}

// NodeFile 是扫描阶段发现的候选文件。
// Name 是从文件名推导出的标识（去掉 "P " 前缀与首个 '.' 之后的部分）。
type NodeFile struct {
	Name    string
	AbsPath string
	RelPath string
}

// ResultEntry 是产物中的一条记录：(level id, scene id) 加上匹配到的节点列表。
// BlockedNodes 保存原始 JSON 元素，保证节点标识逐字节回写。
type ResultEntry struct {
	LevelID      ID                `json:"level_id"`
	SceneID      ID                `json:"scene_id"`
	BlockedNodes []json.RawMessage `json:"blocked_nodes"`
}

// Artifact 是 blocked_nodes.json 的顶层结构。
type Artifact struct {
	BlockedNodeData []ResultEntry `json:"blocked_node_data"`
}
