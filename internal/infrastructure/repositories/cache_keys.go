package repositories

import "fmt"

// 缓存键常量
const (
	CacheKeyEnabledTemplates = "templates:enabled"
)

// GetTemplateCacheKey 模板ID索引缓存键
func GetTemplateCacheKey(id int64) string {
	return fmt.Sprintf("template:id:%d", id)
}

// GetTemplateByModelIDCacheKey 模板稳定标识索引缓存键
func GetTemplateByModelIDCacheKey(modelID string) string {
	return fmt.Sprintf("template:model_id:%s", modelID)
}

// GetTemplatesByMediaTypeCacheKey 按媒体类型分组的模板列表缓存键
func GetTemplatesByMediaTypeCacheKey(mediaType string) string {
	return fmt.Sprintf("templates:media_type:%s", mediaType)
}

// GetProxyAccountCacheKey 代理账号缓存键
func GetProxyAccountCacheKey(id int64) string {
	return fmt.Sprintf("proxy_account:id:%d", id)
}

// GetUserModelCacheKey 用户模型覆盖缓存键
func GetUserModelCacheKey(userID int64, templateModelID string) string {
	return fmt.Sprintf("user_model:%d:%s", userID, templateModelID)
}
