//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包。
// 使用 ebitenmobile 工具构建时会自动调用 init() 函数。
//
//	# Android
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.gonewx.vrroom -o build/android/vrroom.aar -v ./mobile
//
//	# iOS (仅 macOS)
//	ebitenmobile bind -target ios -tags mobile -o build/ios/VRRoom.xcframework -v ./mobile
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/gonewx/vrroom/data"
	"github.com/gonewx/vrroom/pkg/app"
	"github.com/gonewx/vrroom/pkg/embedded"
)

func init() {
	embedded.InitDir(data.Files)

	roomApp, err := app.NewApp(app.Config{Verbose: true})
	if err != nil {
		log.Fatalf("应用初始化失败: %v", err)
	}

	mobile.SetGame(roomApp)
}

// Available 移动端构建包含绑定入口
const Available = true

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
