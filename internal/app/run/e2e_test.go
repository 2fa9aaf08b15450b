package run

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/John-Robertt/BNG/internal/config"
	"github.com/John-Robertt/BNG/internal/domain"
	"github.com/John-Robertt/BNG/internal/output"
)

// fixture 搭一个最小可用的输入：root 树 + level 数据文件 + 产物目录。
type fixture struct {
	root   string
	level  string
	outDir string
}

func setup(t *testing.T, levelBody string) fixture {
	t.Helper()
	base := t.TempDir()
	f := fixture{
		root:   filepath.Join(base, "game"),
		level:  filepath.Join(base, "level_data.json"),
		outDir: filepath.Join(base, "cwd"),
	}
	for _, dir := range []string{f.root, f.outDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("创建目录失败：%v", err)
		}
	}
	if err := os.WriteFile(f.level, []byte(levelBody), 0o644); err != nil {
		t.Fatalf("写入 level 数据失败：%v", err)
	}
	return f
}

func (f fixture) addNodeFile(t *testing.T, name, body string) {
	t.Helper()
	path := filepath.Join(f.root, "P "+name+".txt")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("写入节点文件失败：%v", err)
	}
}

func (f fixture) eff(min bool) config.EffectiveConfig {
	return config.EffectiveConfig{
		RootDir:       f.root,
		LevelDataFile: f.level,
		Min:           min,
	}
}

func (f fixture) readArtifact(t *testing.T) []byte {
	t.Helper()
	b, err := os.ReadFile(filepath.Join(f.outDir, output.ArtifactName))
	if err != nil {
		t.Fatalf("读取产物失败：%v", err)
	}
	return b
}

func TestExecute_SingleMatch(t *testing.T) {
	f := setup(t, `{"levels": [{"id": 1, "scenes": [{"id": "s1", "background": "B alpha.png"}]}]}`)
	f.addNodeFile(t, "alpha", `["n1","n2"]`)

	sum, err := Execute(f.eff(true), f.outDir)
	if err != nil {
		t.Fatalf("不期望错误：%v", err)
	}
	if sum.Files != 1 || sum.Scenes != 1 || sum.Matched != 1 || sum.Skipped != 0 {
		t.Fatalf("摘要统计错误：%+v", sum)
	}

	want := `{"blocked_node_data":[{"level_id":1,"scene_id":"s1","blocked_nodes":["n1","n2"]}]}` + "\n"
	if got := string(f.readArtifact(t)); got != want {
		t.Fatalf("产物不符：\n期望 %s实际 %s", want, got)
	}
}

func TestExecute_NoMatches(t *testing.T) {
	f := setup(t, `{"levels": [{"id": 1, "scenes": [{"id": "s1", "background": "B gamma.png"}]}]}`)
	f.addNodeFile(t, "alpha", `["n1"]`)

	sum, err := Execute(f.eff(true), f.outDir)
	if err != nil {
		t.Fatalf("不期望错误：%v", err)
	}
	if sum.Matched != 0 || sum.Skipped != 1 {
		t.Fatalf("摘要统计错误：%+v", sum)
	}

	want := `{"blocked_node_data":[]}` + "\n"
	if got := string(f.readArtifact(t)); got != want {
		t.Fatalf("期望空产物 %s实际 %s", want, got)
	}
}

func TestExecute_EmptyNodeFile(t *testing.T) {
	f := setup(t, `{"levels": [{"id": 1, "scenes": [{"id": "s1", "background": "B alpha.png"}]}]}`)
	f.addNodeFile(t, "alpha", "  \n ")

	if _, err := Execute(f.eff(true), f.outDir); err != nil {
		t.Fatalf("空节点文件不是错误，但得到：%v", err)
	}

	// 空文件产出空列表条目，而不是省略。
	want := `{"blocked_node_data":[{"level_id":1,"scene_id":"s1","blocked_nodes":[]}]}` + "\n"
	if got := string(f.readArtifact(t)); got != want {
		t.Fatalf("期望 %s实际 %s", want, got)
	}
}

func TestExecute_Idempotent(t *testing.T) {
	for _, min := range []bool{false, true} {
		f := setup(t, `{"levels": [
			{"id": 2, "scenes": [{"id": "b", "background": "B beta.png"}]},
			{"id": 1, "scenes": [{"id": "a", "background": "B alpha.png"}]}
		]}`)
		f.addNodeFile(t, "alpha", `[1, 2, 3]`)
		f.addNodeFile(t, "beta", `["x"]`)

		if _, err := Execute(f.eff(min), f.outDir); err != nil {
			t.Fatalf("首次运行失败：%v", err)
		}
		first := f.readArtifact(t)

		if _, err := Execute(f.eff(min), f.outDir); err != nil {
			t.Fatalf("二次运行失败：%v", err)
		}
		second := f.readArtifact(t)

		if !bytes.Equal(first, second) {
			t.Fatalf("min=%v：两次运行产物应逐字节一致", min)
		}
	}
}

func TestExecute_PrettyAndMinParseEqual(t *testing.T) {
	f := setup(t, `{"levels": [{"id": 1, "scenes": [{"id": "s1", "background": "B alpha.png"}]}]}`)
	f.addNodeFile(t, "alpha", `["n1"]`)

	if _, err := Execute(f.eff(false), f.outDir); err != nil {
		t.Fatalf("pretty 运行失败：%v", err)
	}
	pretty := f.readArtifact(t)

	if _, err := Execute(f.eff(true), f.outDir); err != nil {
		t.Fatalf("min 运行失败：%v", err)
	}
	min := f.readArtifact(t)

	var a, b any
	if err := json.Unmarshal(pretty, &a); err != nil {
		t.Fatalf("pretty 解析失败：%v", err)
	}
	if err := json.Unmarshal(min, &b); err != nil {
		t.Fatalf("min 解析失败：%v", err)
	}
	if string(pretty) == string(min) {
		t.Fatalf("pretty 与 min 字节应不同")
	}
	aj, _ := json.Marshal(a)
	bj, _ := json.Marshal(b)
	if !bytes.Equal(aj, bj) {
		t.Fatalf("pretty 与 min 解析结果应结构相等")
	}
}

func TestExecute_RootNotFound(t *testing.T) {
	f := setup(t, `{"levels": []}`)

	eff := f.eff(false)
	eff.RootDir = filepath.Join(f.root, "missing")
	_, err := Execute(eff, f.outDir)
	if domain.Code(err) != domain.ErrCodeNotFound {
		t.Fatalf("期望 not_found，实际 %v", err)
	}
}

func TestExecute_MalformedLevelDataLeavesNoArtifact(t *testing.T) {
	f := setup(t, `{"levels": [`)
	f.addNodeFile(t, "alpha", `["n1"]`)

	_, err := Execute(f.eff(true), f.outDir)
	if domain.Code(err) != domain.ErrCodeMalformedInput {
		t.Fatalf("期望 malformed_input，实际 %v", err)
	}
	if _, err := os.Stat(filepath.Join(f.outDir, output.ArtifactName)); !os.IsNotExist(err) {
		t.Fatalf("失败的运行不应写出产物，Stat err=%v", err)
	}
}

func TestExecute_MalformedNodeFileLeavesNoArtifact(t *testing.T) {
	f := setup(t, `{"levels": [{"id": 1, "scenes": [{"id": "s1", "background": "B alpha.png"}]}]}`)
	f.addNodeFile(t, "alpha", `["n1",`)

	_, err := Execute(f.eff(true), f.outDir)
	if domain.Code(err) != domain.ErrCodeMalformedInput {
		t.Fatalf("期望 malformed_input，实际 %v", err)
	}
	if _, err := os.Stat(filepath.Join(f.outDir, output.ArtifactName)); !os.IsNotExist(err) {
		t.Fatalf("失败的运行不应写出产物，Stat err=%v", err)
	}
}

func TestExecute_ReplacesExistingArtifact(t *testing.T) {
	f := setup(t, `{"levels": [{"id": 1, "scenes": [{"id": "s1", "background": "B alpha.png"}]}]}`)
	f.addNodeFile(t, "alpha", `["n1"]`)

	stale := filepath.Join(f.outDir, output.ArtifactName)
	if err := os.WriteFile(stale, []byte("stale"), 0o644); err != nil {
		t.Fatalf("写入旧产物失败：%v", err)
	}

	if _, err := Execute(f.eff(true), f.outDir); err != nil {
		t.Fatalf("不期望错误：%v", err)
	}
	if got := string(f.readArtifact(t)); got == "stale" {
		t.Fatalf("旧产物应被无条件覆盖")
	}
}

func TestExecute_ExcludeDirsFromConfig(t *testing.T) {
	f := setup(t, `{"levels": [{"id": 1, "scenes": [{"id": "s1", "background": "B alpha.png"}]}]}`)

	// backup/ 里的同名文件被排除后，场景无匹配。
	path := filepath.Join(f.root, "backup", "P alpha.txt")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("创建目录失败：%v", err)
	}
	if err := os.WriteFile(path, []byte(`["n1"]`), 0o644); err != nil {
		t.Fatalf("写入节点文件失败：%v", err)
	}

	eff := f.eff(true)
	eff.ExcludeDirs = []string{"backup"}
	sum, err := Execute(eff, f.outDir)
	if err != nil {
		t.Fatalf("不期望错误：%v", err)
	}
	if sum.Files != 0 || sum.Skipped != 1 {
		t.Fatalf("摘要统计错误：%+v", sum)
	}
}
