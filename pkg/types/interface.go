package types

// ============================================================================
//                              InterfaceDescriptor
// ============================================================================

// InterfaceDescriptor 传输接口快照
//
// 描述节点运行时在查询时刻已知的一个传输接口。
// 快照创建后不再更新。
type InterfaceDescriptor struct {
	// Name 接口名称
	Name string `json:"name"`

	// Kind 接口实现类型，如 "tcp"、"quic"、"relay"
	Kind string `json:"kind"`

	// Mode 工作模式
	Mode InterfaceMode `json:"mode"`

	// Online 接口是否在线
	Online bool `json:"online"`

	// Bitrate 链路速率（bit/s）
	// 仅当接口类型可测量速率时存在，否则为 nil
	Bitrate *uint64 `json:"bitrate,omitempty"`
}

// HasBitrate 返回接口是否提供速率
func (d InterfaceDescriptor) HasBitrate() bool {
	return d.Bitrate != nil
}

// BitrateKbps 返回以 kbps 为单位的速率
//
// 没有速率时第二个返回值为 false。
func (d InterfaceDescriptor) BitrateKbps() (float64, bool) {
	if d.Bitrate == nil {
		return 0, false
	}
	return float64(*d.Bitrate) / 1000, true
}

// Bitrate 返回指向 bps 的指针，便于构造 InterfaceDescriptor
func Bitrate(bps uint64) *uint64 {
	return &bps
}
