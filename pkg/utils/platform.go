//go:build !mobile

package utils

import "os"

// MobileEmulateEnv 桌面端模拟移动端界面的环境变量
const MobileEmulateEnv = "VRROOM_MOBILE_EMULATE"

// IsMobile 是否使用触摸界面
// 桌面构建默认 false，设置 VRROOM_MOBILE_EMULATE=1 可在本地查看触摸提示
func IsMobile() bool {
	return os.Getenv(MobileEmulateEnv) == "1"
}
