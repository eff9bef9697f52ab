// Package identity 实现身份探测所需的密钥与指纹功能
//
// 本包为每次诊断生成一个全新的 Ed25519 身份，用于确认身份子系统可用。
// 生成的身份不会持久化，也不代表节点自身的身份。
//
// # 派生规则
//
//   - Fingerprint: SHA-256(公钥) 截断为前 16 字节
//   - PeerID:      Base58(SHA-256(公钥))
//
// # 快速开始
//
//	gen := identity.NewGenerator()
//	id, err := gen.New()
//	if err != nil {
//	    return err
//	}
//	fmt.Println(types.PrettyHex(id.Fingerprint()))
package identity
