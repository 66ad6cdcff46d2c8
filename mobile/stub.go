//go:build !mobile

// Package mobile 的桌面占位
//
// 真正的绑定入口只在 -tags mobile 时编译；本文件让 go build ./... 在桌面上也能通过。
package mobile

// Available 桌面构建没有移动端入口
const Available = false
