// Package data 内嵌房间配置与演示脚本
//
// //go:embed 只能引用当前包目录下的文件，所以嵌入声明放在 data/ 目录自身，
// 桌面、移动端和各个命令行工具都从这里取同一份配置。
package data

import "embed"

// Files 以 data/ 目录为根：room.yaml、scenarios/*.yaml
//
//go:embed room.yaml scenarios
var Files embed.FS
