package events

import "github.com/gonewx/vrroom/pkg/types"

// SelectEvent 插槽选择事件
type SelectEvent struct {
	Socket types.SocketItem // 插槽期望的物品
	Item   types.SocketItem // 实际放入/取出的物品
}

// Receptacle 插槽
// 物品放入时触发 SelectEntered，取出时触发 SelectExited
type Receptacle struct {
	Accepts types.SocketItem

	SelectEntered Source[SelectEvent]
	SelectExited  Source[SelectEvent]

	occupied bool
	held     types.SocketItem
}

// NewReceptacle 创建只接受指定物品的插槽
func NewReceptacle(accepts types.SocketItem) *Receptacle {
	return &Receptacle{Accepts: accepts}
}

// Place 放入物品
// 插槽只接受匹配的物品；已有物品时忽略。返回是否放入成功
func (r *Receptacle) Place(item types.SocketItem) bool {
	if r.occupied || item != r.Accepts {
		return false
	}
	r.occupied = true
	r.held = item
	r.SelectEntered.Emit(SelectEvent{Socket: r.Accepts, Item: item})
	return true
}

// Remove 取出物品，插槽为空时返回 false
func (r *Receptacle) Remove() bool {
	if !r.occupied {
		return false
	}
	r.occupied = false
	r.SelectExited.Emit(SelectEvent{Socket: r.Accepts, Item: r.held})
	return true
}

// Occupied 插槽是否有物品
func (r *Receptacle) Occupied() bool {
	return r.occupied
}
