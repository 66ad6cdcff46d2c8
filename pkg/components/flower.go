package components

import "github.com/gonewx/vrroom/pkg/utils"

// FlowerComponent 浇水生成的花朵/蘑菇
// 拥有此组件即属于"已放置物体"分类，密度检测只统计这一类
type FlowerComponent struct {
	Prefab string         // 预制体名称
	Cell   utils.GridCell // 占用的去重网格
}
