package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/John-Robertt/BNG/internal/app/run"
	"github.com/John-Robertt/BNG/internal/config"
	"github.com/John-Robertt/BNG/internal/output"
)

func main() {
	args := os.Args[1:]

	for _, a := range args {
		if isHelp(a) {
			printUsage(os.Stdout)
			return
		}
	}

	if code := runCmd(args); code != 0 {
		os.Exit(code)
	}
}

func runCmd(args []string) int {
	cli, err := parseArgs(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "参数错误：%v\n\n", err)
		printUsage(os.Stderr)
		return 2
	}

	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "读取当前目录失败：%v\n", err)
		return 1
	}

	eff, err := config.LoadEffective(cwd, cli)
	if err != nil {
		fmt.Fprintf(os.Stderr, "错误：%v\n", err)
		return 1
	}

	sum, err := run.Execute(eff, cwd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "错误：%v\n", err)
		return 1
	}

	// 摘要与产物位置都走 stderr；成功时 stdout 不输出任何内容。
	fmt.Fprintf(os.Stderr, "完成：files=%d scenes=%d matched=%d skipped=%d collisions=%d\n",
		sum.Files, sum.Scenes, sum.Matched, sum.Skipped, sum.Collisions,
	)
	fmt.Fprintf(os.Stderr, "out: %s\n", filepath.Join(cwd, output.ArtifactName))
	return 0
}

func parseArgs(args []string) (config.CLIArgs, error) {
	cli := config.CLIArgs{}

	for i := 0; i < len(args); i++ {
		a := args[i]
		switch {
		case a == "--min":
			cli.Min = true
			cli.MinSet = true
		case strings.HasPrefix(a, "--min="):
			v := strings.TrimPrefix(a, "--min=")
			switch v {
			case "true":
				cli.Min = true
			case "false":
				cli.Min = false
			default:
				return config.CLIArgs{}, fmt.Errorf("--min 只能是 true 或 false，实际是 %q", v)
			}
			cli.MinSet = true
		case strings.HasPrefix(a, "-"):
			return config.CLIArgs{}, fmt.Errorf("未知参数 %q", a)
		case cli.RootDir == "":
			cli.RootDir = a
		case cli.LevelDataFile == "":
			cli.LevelDataFile = a
		default:
			return config.CLIArgs{}, fmt.Errorf("多余的参数 %q", a)
		}
	}

	if cli.RootDir == "" {
		return config.CLIArgs{}, fmt.Errorf("缺少 root_dir")
	}
	if cli.LevelDataFile == "" {
		return config.CLIArgs{}, fmt.Errorf("缺少 level_data_file")
	}
	return cli, nil
}

func isHelp(s string) bool {
	return s == "-h" || s == "--help" || s == "help"
}

func printUsage(w *os.File) {
	fmt.Fprint(w, `用法：
  bng <root_dir> <level_data_file> [--min[=true|false]]

参数：
  root_dir         要扫描的游戏目录（递归收集 "P <name>.txt"）
  level_data_file  level 数据 JSON 文件
  --min            输出 min 化 JSON（默认 2 空格缩进）；
                   --min=false 可覆盖 bng.json 中的 min=true
  -h, --help       显示帮助

产物固定写到当前目录下的 blocked_nodes.json（已存在则覆盖）。
可选配置文件 <root_dir>/bng.json：{"exclude_dirs": [...], "min": true}
`)
}
