package types

import "encoding/hex"

// PrettyHex 将字节序列渲染为规范的分组十六进制字符串
//
// 格式："<" + 以 ":" 分隔的小写十六进制字节对 + ">"，
// 例如 []byte{0xde, 0xad} -> "<de:ad>"。
// 相同输入总是得到相同输出。
func PrettyHex(b []byte) string {
	if len(b) == 0 {
		return "<>"
	}

	enc := hex.EncodeToString(b)
	out := make([]byte, 0, len(b)*3+1)
	out = append(out, '<')
	for i := 0; i < len(enc); i += 2 {
		if i > 0 {
			out = append(out, ':')
		}
		out = append(out, enc[i], enc[i+1])
	}
	out = append(out, '>')
	return string(out)
}
