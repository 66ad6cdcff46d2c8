//go:build mobile

package utils

// IsMobile 移动端构建始终使用触摸界面
func IsMobile() bool {
	return true
}
