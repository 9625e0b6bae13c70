package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMediaType_IsValid(t *testing.T) {
	assert.True(t, MediaTypeText.IsValid())
	assert.True(t, MediaTypeImage.IsValid())
	assert.True(t, MediaTypeVideo.IsValid())
	assert.False(t, MediaType("audio").IsValid())
	assert.False(t, MediaType("").IsValid())
}

func TestModelTemplate_DefaultEndpointURL(t *testing.T) {
	t.Run("未设置时视为无默认端点", func(t *testing.T) {
		template := &ModelTemplate{}
		assert.False(t, template.HasDefaultEndpointURL())
		assert.Equal(t, "", template.GetDefaultEndpointURL())
	})

	t.Run("空串同样视为未设置", func(t *testing.T) {
		empty := ""
		template := &ModelTemplate{DefaultEndpointURL: &empty}
		assert.False(t, template.HasDefaultEndpointURL())
	})

	t.Run("非空值视为显式设置", func(t *testing.T) {
		url := "https://template.example.com/invoke"
		template := &ModelTemplate{DefaultEndpointURL: &url}
		assert.True(t, template.HasDefaultEndpointURL())
		assert.Equal(t, url, template.GetDefaultEndpointURL())
	})
}
