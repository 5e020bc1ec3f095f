// Package complaintsvc - Test chuẩn hóa kênh mua hàng.
package complaintsvc

import (
	"testing"

	complaintmodels "complaint_hub/internal/api/complaint/models"
)

func TestNormalizeChannel_Empty(t *testing.T) {
	if got := NormalizeChannel(""); got != complaintmodels.SentinelUnknown {
		t.Errorf("kênh rỗng phải về %q, got %q", complaintmodels.SentinelUnknown, got)
	}
}

func TestNormalizeChannel_OnlineKeywords(t *testing.T) {
	cases := []string{"蝦皮購物", "MOMO購物網", "momo", "酷澎", "酷膨颱風店", "foodpanda外送", "線上家樂福"}
	for _, in := range cases {
		if got := NormalizeChannel(in); got != ChannelOnlinePlatform {
			t.Errorf("NormalizeChannel(%q) = %q, muốn %q", in, got, ChannelOnlinePlatform)
		}
	}
}

func TestNormalizeChannel_OnlineBeatsPhysicalChain(t *testing.T) {
	// Tên chứa cả keyword online lẫn tên chuỗi vật lý: online thắng
	if got := NormalizeChannel("線上家樂福"); got != ChannelOnlinePlatform {
		t.Errorf("keyword online phải thắng tên chuỗi vật lý, got %q", got)
	}
	if got := NormalizeChannel("uber家樂福"); got != ChannelOnlinePlatform {
		t.Errorf("keyword online phải thắng tên chuỗi vật lý, got %q", got)
	}
}

func TestNormalizeChannel_MainChannels(t *testing.T) {
	cases := map[string]string{
		"7-11信義店": "7-11",
		"全家便利商店": "全家",
		"家樂福內湖店": "家樂福",
		"全聯福利中心": "全聯",
		"大潤發":    "大潤發",
		"萊爾富門市":  "萊爾富",
	}
	for in, want := range cases {
		if got := NormalizeChannel(in); got != want {
			t.Errorf("NormalizeChannel(%q) = %q, muốn %q", in, got, want)
		}
	}
}

func TestNormalizeChannel_Unrecognized(t *testing.T) {
	if got := NormalizeChannel("自家雜貨店"); got != ChannelOther {
		t.Errorf("kênh không nhận diện được phải về %q, got %q", ChannelOther, got)
	}
}

func TestNormalizeChannel_Idempotent(t *testing.T) {
	inputs := []string{"", "蝦皮購物", "7-11信義店", "自家雜貨店", "家樂福內湖店"}
	for _, in := range inputs {
		once := NormalizeChannel(in)
		twice := NormalizeChannel(once)
		if once != twice {
			t.Errorf("NormalizeChannel không idempotent với %q: lần 1 %q, lần 2 %q", in, once, twice)
		}
	}
}
