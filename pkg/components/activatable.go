package components

// ActivatableComponent 可被谜题开关的场景对象（墙、传送区域、巫师等）
type ActivatableComponent struct {
	Name   string
	Active bool
}
