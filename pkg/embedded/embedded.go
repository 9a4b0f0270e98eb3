// Package embedded 提供嵌入资源的统一访问接口
//
// 由于 Go embed 指令只能嵌入当前包目录及其子目录的文件，
// embed.FS 变量必须声明在项目根目录（embed.go）。
// 本包提供包装函数，让其他包可以访问嵌入的数据文件。
//
// 使用前必须调用 Init() 初始化。
package embedded

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// DefaultConfigPath 内置的默认乐园配置
const DefaultConfigPath = "data/paradise.yaml"

var (
	dataFS      fs.FS
	initialized bool
)

// Init 初始化数据文件系统
// 必须在 main() 开始时、任何配置加载之前调用
func Init(data fs.FS) {
	dataFS = data
	initialized = true
}

// IsInitialized 返回 embedded 包是否已初始化
func IsInitialized() bool {
	return initialized
}

// ReadFile 读取嵌入的数据文件
// 路径必须以 "data/" 开头
func ReadFile(path string) ([]byte, error) {
	if !initialized {
		return nil, fmt.Errorf("embedded package not initialized, call Init() first")
	}

	// 标准化路径分隔符为正斜杠，移除可能的 "./" 前缀
	path = strings.TrimPrefix(filepath.ToSlash(path), "./")

	if !strings.HasPrefix(path, "data/") {
		return nil, fmt.Errorf("unknown resource path prefix: %s (must start with 'data/')", path)
	}
	return fs.ReadFile(dataFS, path)
}

// Exists 检查文件是否存在于嵌入的数据中
func Exists(path string) bool {
	_, err := ReadFile(path)
	return err == nil
}
