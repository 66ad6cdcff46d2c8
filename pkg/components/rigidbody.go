package components

import "github.com/gonewx/vrroom/pkg/types"

// RigidbodyComponent 刚体属性
// 模拟器本身不做刚体动力学，这里只保存宿主需要的参数
type RigidbodyComponent struct {
	Mass           float64
	CenterOfMass   types.Vec3 // 相对实体原点的重心
	FreezeRotation bool
	IsKinematic    bool
}

// CenterOfMassAdjusterComponent 开局时把重心移到 Offset
// 重心越低，道具越不容易倾倒
type CenterOfMassAdjusterComponent struct {
	Offset  types.Vec3
	Applied bool
}
