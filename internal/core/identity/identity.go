package identity

import (
	"crypto/ed25519"
	"crypto/rand"
	"fmt"
	"io"

	"github.com/minio/sha256-simd"
	"github.com/mr-tron/base58"

	identityif "github.com/dep2p/dep2p-check/pkg/interfaces/identity"
	"github.com/dep2p/dep2p-check/pkg/types"
)

// FingerprintLength 指纹长度（字节）
const FingerprintLength = 16

// ============================================================================
//                              Identity 实现
// ============================================================================

// Identity Ed25519 身份
type Identity struct {
	priv        ed25519.PrivateKey
	pub         ed25519.PublicKey
	digest      [sha256.Size]byte
	fingerprint []byte
	peerID      string
}

var _ identityif.Identity = (*Identity)(nil)

// FromPrivateKey 从现有私钥构造身份
func FromPrivateKey(priv ed25519.PrivateKey) (*Identity, error) {
	if len(priv) != ed25519.PrivateKeySize {
		return nil, ErrNilPrivateKey
	}

	pub, ok := priv.Public().(ed25519.PublicKey)
	if !ok {
		return nil, ErrNilPrivateKey
	}

	id := &Identity{
		priv:   priv,
		pub:    pub,
		digest: sha256.Sum256(pub),
	}
	id.fingerprint = append([]byte(nil), id.digest[:FingerprintLength]...)
	id.peerID = base58.Encode(id.digest[:])
	return id, nil
}

// Fingerprint 返回指纹副本
func (i *Identity) Fingerprint() []byte {
	return append([]byte(nil), i.fingerprint...)
}

// PeerID 返回 Base58 编码的节点 ID
func (i *Identity) PeerID() string {
	return i.peerID
}

// KeyType 返回密钥类型
func (i *Identity) KeyType() types.KeyType {
	return types.KeyTypeEd25519
}

// PublicKey 返回公钥
func (i *Identity) PublicKey() ed25519.PublicKey {
	return i.pub
}

// Sign 签名数据
func (i *Identity) Sign(data []byte) ([]byte, error) {
	return ed25519.Sign(i.priv, data), nil
}

// Verify 使用自身公钥验证签名
func (i *Identity) Verify(data, signature []byte) (bool, error) {
	return ed25519.Verify(i.pub, data, signature), nil
}

// ============================================================================
//                              Generator
// ============================================================================

// Generator 身份生成器
type Generator struct {
	rand io.Reader
}

var _ identityif.Factory = (*Generator)(nil)

// NewGenerator 创建使用系统随机源的生成器
func NewGenerator() *Generator {
	return &Generator{rand: rand.Reader}
}

// NewGeneratorWithReader 创建使用指定随机源的生成器
//
// 主要用于测试中生成确定性的身份。
func NewGeneratorWithReader(r io.Reader) *Generator {
	return &Generator{rand: r}
}

// New 生成新身份
func (g *Generator) New() (identityif.Identity, error) {
	_, priv, err := ed25519.GenerateKey(g.rand)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToGenerateKey, err)
	}
	return FromPrivateKey(priv)
}
