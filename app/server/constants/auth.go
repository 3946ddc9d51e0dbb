package constants

import "time"

// 登录令牌的有效期
const AuthTokenDuration = 24 * time.Hour
