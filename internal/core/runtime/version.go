package runtime

import (
	"bufio"
	"bytes"
	"errors"
	"strings"

	"github.com/hashicorp/go-version"
)

// errNoVersion 输出中没有可解析的版本号
var errNoVersion = errors.New("no version found in runtime output")

// ParseVersionOutput 从 `<bin> -version` 的输出中提取版本
//
// 输出形如：
//
//	dep2p v0.2.0-beta.1
//	  commit: 1a2b3c4d
//
// 返回第一个可解析的版本号及其原始文本。
func ParseVersionOutput(out []byte) (*version.Version, string, error) {
	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		for _, field := range strings.Fields(scanner.Text()) {
			if !looksLikeVersion(field) {
				continue
			}
			if v, err := version.NewVersion(field); err == nil {
				return v, field, nil
			}
		}
	}
	return nil, "", errNoVersion
}

func looksLikeVersion(s string) bool {
	if strings.HasPrefix(s, "v") {
		s = s[1:]
	}
	return s != "" && s[0] >= '0' && s[0] <= '9' && strings.Contains(s, ".")
}
