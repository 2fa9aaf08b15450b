package domain

import (
	"errors"
	"fmt"
)

const (
	// ErrCodeMalformedInput 表示 level 数据或节点文件不是合法 JSON（或结构不符）。
	ErrCodeMalformedInput = "malformed_input"
	// ErrCodeNotFound 表示 root_dir 或 level_data_file 不存在。
	ErrCodeNotFound = "not_found"
	// ErrCodeConfigInvalid 表示 bng.json 无法读取/解析。
	ErrCodeConfigInvalid = "config_invalid"
	// ErrCodeIOFailed 表示其余文件系统失败（遍历/读/写）。
	ErrCodeIOFailed = "io_failed"
)

// InputError 是管线的结构化错误（带稳定 error_code）。
// 任何一处失败都会中止整次运行；产物只在全部处理完成后写出。
type InputError struct {
	Code string
	Path string
	Err  error
}

func (e *InputError) Error() string {
	if e.Path != "" && e.Err != nil {
		return fmt.Sprintf("%s：%q：%v", e.Code, e.Path, e.Err)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s：%v", e.Code, e.Err)
	}
	return fmt.Sprintf("%s：%q", e.Code, e.Path)
}

func (e *InputError) Unwrap() error { return e.Err }

// Code 从 error 中提取 error_code；若不是 *InputError 则返回空串。
func Code(err error) string {
	var e *InputError
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
