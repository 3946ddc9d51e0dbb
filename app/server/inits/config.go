package inits

import (
	"fmt"
	"hiking-gear-tracker/app/server/config"
	"os"
	"strings"
)

func Config() (cfg *config.Config, err error) {
	// 手动配置映射，如果这里有什么自动映射工具就好了， viper 好像处理这种基于环境变量的配置也不是很方便
	cfg = &config.Config{}

	{
		mode, exist := os.LookupEnv("MODE")
		cfg.System.IsProd = exist && strings.HasPrefix(strings.ToLower(mode), "p")
	}

	if listen, exist := os.LookupEnv("LISTEN"); !exist {
		cfg.System.Listen = ":1323" // 默认监听地址
	} else {
		cfg.System.Listen = listen
	}

	if dbconn, exist := os.LookupEnv("DB_CONN"); !exist {
		return nil, fmt.Errorf("DB_CONN environment variable not set")
	} else {
		cfg.System.DBConnectionString = dbconn
	}

	if redisconn, exist := os.LookupEnv("REDIS_CONN"); !exist {
		return nil, fmt.Errorf("REDIS_CONN environment variable not set")
	} else {
		cfg.System.RedisConnectionString = redisconn
	}

	if sigsk, exist := os.LookupEnv("SIGNATURE_SECRET_KEY"); !exist {
		return nil, fmt.Errorf("SIGNATURE_SECRET_KEY environment variable not set")
	} else {
		cfg.Security.SignatureSecretKey = sigsk
	}

	if adminEmail, exist := os.LookupEnv("ADMIN_EMAIL"); !exist {
		cfg.Bootstrap.AdminEmail = "admin@example.com"
	} else {
		cfg.Bootstrap.AdminEmail = adminEmail
	}

	if adminPassword, exist := os.LookupEnv("ADMIN_PASSWORD"); !exist {
		cfg.Bootstrap.AdminPassword = "password"
	} else {
		cfg.Bootstrap.AdminPassword = adminPassword
	}

	return cfg, nil
}
