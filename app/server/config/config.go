package config

type Config struct {
	System struct {
		IsProd                bool   // 是否为生产环境
		Listen                string // 监听地址
		DBConnectionString    string // Postgres 数据库的连接字符串
		RedisConnectionString string // Redis 数据库的连接字符串
	}
	Security struct {
		SignatureSecretKey string // 签名密钥，用于产生签名（例如 JWT ），更新会导致旧有会话失效，但不影响使用
	}
	Bootstrap struct {
		AdminEmail    string // 初次启动时创建的超级用户邮箱
		AdminPassword string // 初次启动时创建的超级用户密码，务必在首次登录后修改
	}
}
