package domain

import (
	"strconv"
	"strings"
	"time"
)

const (
	RegistrationQRPrefix = "LUBANA_REG_"
	MemberQRPrefix       = "LUBANA_MEMBER_"

	userPrefixLen = 8
)

// UserPrefix is the first eight characters of userID, uppercased and
// right-padded with '0' when the id is shorter.
func UserPrefix(userID string) string {
	p := strings.ToUpper(userID)
	if len(p) > userPrefixLen {
		return p[:userPrefixLen]
	}
	return p + strings.Repeat("0", userPrefixLen-len(p))
}

// RegistrationQRCode returns the single-use code for a registration issued
// to userID at issuedAt.
func RegistrationQRCode(userID string, issuedAt time.Time) string {
	return RegistrationQRPrefix + UserPrefix(userID) + "_" + strconv.FormatInt(issuedAt.UnixMilli(), 10)
}

// MemberQRCode returns the permanent membership code of userID.
func MemberQRCode(userID string) string {
	return MemberQRPrefix + UserPrefix(userID)
}

func IsRegistrationQRCode(code string) bool {
	return strings.HasPrefix(code, RegistrationQRPrefix)
}

func IsMemberQRCode(code string) bool {
	return strings.HasPrefix(code, MemberQRPrefix)
}
