// Package complaintsvc - Chuẩn hóa kênh mua hàng về vocabulary cố định.
package complaintsvc

import (
	"strings"

	complaintmodels "complaint_hub/internal/api/complaint/models"
)

// ChannelOnlinePlatform là bucket chung cho mọi kênh thương mại điện tử
const ChannelOnlinePlatform = "網購平台"

// ChannelOther là bucket cho kênh không nhận diện được
const ChannelOther = "其他"

// onlinePlatformKeywords nhận diện kênh online qua substring không phân biệt
// hoa thường. Danh sách bao gồm cả các biến thể viết sai chính tả đã gặp
// trong dữ liệu thật (酷澎 và các biến thể 酷膨/酷彭/酷鵬).
//
// Đây là bảng cấu hình nghiệp vụ: thứ tự và nội dung được audit/chỉnh riêng,
// không nhét vào điều kiện inline trong logic thống kê.
var onlinePlatformKeywords = []string{
	"酷澎", "酷膨", "酷彭", "酷鵬",
	"MOMO", "momo",
	"蝦皮", "蝦皮商城",
	"線上家樂福", "uber家樂福",
	"熊貓超市", "foodpanda",
}

// mainChannels các chuỗi bán lẻ vật lý, xét theo đúng thứ tự ưu tiên:
// chuỗi đứng trước thắng khi một tên kênh chứa nhiều tên chuỗi.
var mainChannels = []string{
	"7-11", "萊爾富", "全家", "OK", "家樂福", "全聯", "大潤發",
}

// canonicalChannels tập giá trị đã chuẩn hóa — đầu vào thuộc tập này được
// trả về nguyên vẹn để NormalizeChannel idempotent.
var canonicalChannels = buildCanonicalChannels()

func buildCanonicalChannels() map[string]struct{} {
	set := map[string]struct{}{
		ChannelOnlinePlatform:           {},
		ChannelOther:                    {},
		complaintmodels.SentinelUnknown: {},
	}
	for _, ch := range mainChannels {
		set[ch] = struct{}{}
	}
	return set
}

// isOnlinePlatform kiểm tra channel có chứa keyword của kênh online không
func isOnlinePlatform(channel string) bool {
	if channel == "" {
		return false
	}
	lower := strings.ToLower(channel)
	for _, keyword := range onlinePlatformKeywords {
		if strings.Contains(lower, strings.ToLower(keyword)) {
			return true
		}
	}
	return false
}

// NormalizeChannel chuẩn hóa chuỗi kênh mua hàng tự do về vocabulary cố định:
// rỗng → 未知; khớp keyword online → 網購平台 (kiểm tra TRƯỚC chuỗi vật lý —
// keyword online thắng kể cả khi tên kênh cũng chứa tên chuỗi vật lý);
// khớp tên chuỗi vật lý theo thứ tự ưu tiên → tên chuỗi; còn lại → 其他.
func NormalizeChannel(channel string) string {
	if channel == "" {
		return complaintmodels.SentinelUnknown
	}

	// Giá trị đã chuẩn hóa đi qua lần nữa phải trả về chính nó
	if _, ok := canonicalChannels[channel]; ok {
		return channel
	}

	if isOnlinePlatform(channel) {
		return ChannelOnlinePlatform
	}

	for _, mainChannel := range mainChannels {
		if strings.Contains(channel, mainChannel) {
			return mainChannel
		}
	}

	return ChannelOther
}
