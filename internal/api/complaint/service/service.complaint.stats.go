package complaintsvc

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	complaintdto "complaint_hub/internal/api/complaint/dto"
	complaintmodels "complaint_hub/internal/api/complaint/models"
)

const (
	productTopLimit = 10
	causeTopLimit   = 5
	keywordLimit    = 20
	trendMonthLimit = 12
)

// causeStopWords các từ chức năng bị loại khỏi phân tích keyword
var causeStopWords = map[string]struct{}{
	"的": {}, "了": {}, "是": {}, "在": {}, "有": {},
	"與": {}, "及": {}, "或": {}, "因": {}, "為": {},
	"因為": {}, "導致": {}, "造成": {}, "可能": {}, "經查": {},
	"and": {}, "the": {}, "of": {}, "to": {}, "in": {},
}

// groupEntry một nhóm trong kết quả groupCount, giữ thứ tự xuất hiện đầu tiên
type groupEntry struct {
	Key   string
	Count int
}

// groupCount đếm số bản ghi theo key. Key rỗng được thay bằng fallback.
// Kết quả sắp giảm dần theo count; count bằng nhau giữ thứ tự nhóm
// xuất hiện lần đầu (sort ổn định).
func groupCount(records []complaintmodels.Complaint, fallback string, keyFn func(complaintmodels.Complaint) string) []groupEntry {
	counts := make(map[string]int, len(records))
	order := make([]string, 0, len(records))

	for _, record := range records {
		key := keyFn(record)
		if key == "" {
			key = fallback
		}
		if _, seen := counts[key]; !seen {
			order = append(order, key)
		}
		counts[key]++
	}

	entries := make([]groupEntry, 0, len(order))
	for _, key := range order {
		entries = append(entries, groupEntry{Key: key, Count: counts[key]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	return entries
}

// truncateGroups cắt danh sách nhóm đã sắp giảm dần về tối đa limit mục
func truncateGroups(entries []groupEntry, limit int) []groupEntry {
	if limit > 0 && len(entries) > limit {
		return entries[:limit]
	}
	return entries
}

// buildPareto dựng phân tích Pareto từ danh sách nhóm đã sắp giảm dần:
// lấy tối đa limit nhóm đầu, phần trăm tích lũy tính trên tổng của các nhóm
// ĐƯỢC GIỮ, làm tròn 2 chữ số thập phân — mục cuối luôn là 100.00 (trừ khi
// tổng bằng 0).
func buildPareto(entries []groupEntry, limit int) []complaintdto.ParetoEntry {
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}

	total := 0
	for _, entry := range entries {
		total += entry.Count
	}

	out := make([]complaintdto.ParetoEntry, 0, len(entries))
	running := 0
	for _, entry := range entries {
		running += entry.Count
		pct := 0.0
		if total > 0 {
			pct = math.Round(float64(running)/float64(total)*10000) / 100
		}
		out = append(out, complaintdto.ParetoEntry{
			Item:                 entry.Key,
			Count:                entry.Count,
			CumulativePercentage: pct,
		})
	}
	return out
}

// shelfLifeBucketName map số ngày (hết hạn − phản ánh) về tên khoảng
func shelfLifeBucketName(days int) string {
	switch {
	case days < 0:
		return "已過期"
	case days <= 90:
		return "0-90天"
	case days <= 180:
		return "91-180天"
	case days <= 365:
		return "181-365天"
	default:
		return "366天以上"
	}
}

// buildShelfLifeStats phân bố số ngày còn hạn tại thời điểm phản ánh.
// Bản ghi thiếu hoặc ngày không parse được bị loại khỏi mẫu.
func buildShelfLifeStats(records []complaintmodels.Complaint) complaintdto.ShelfLifeStats {
	bucketOrder := []string{"已過期", "0-90天", "91-180天", "181-365天", "366天以上"}
	counts := make(map[string]int, len(bucketOrder))

	total := 0
	for _, record := range records {
		reaction, ok := ParseYMD(record.ReactionTime)
		if !ok {
			continue
		}
		expiry, ok := ParseYMD(record.ExpiryDate)
		if !ok {
			continue
		}
		days := int(math.Floor(expiry.Sub(reaction).Hours() / 24))
		counts[shelfLifeBucketName(days)]++
		total++
	}

	buckets := make([]complaintdto.ShelfLifeBucket, 0, len(bucketOrder))
	for _, name := range bucketOrder {
		buckets = append(buckets, complaintdto.ShelfLifeBucket{Range: name, Count: counts[name]})
	}
	return complaintdto.ShelfLifeStats{Total: total, Buckets: buckets}
}

// buildAvgResolutionDays KPI thời gian xử lý trung bình: số ngày tròn (floor)
// từ lúc phản ánh đến lần cập nhật cuối, trung bình làm tròn 1 chữ số thập phân.
// Bản ghi thiếu dữ liệu hoặc cho kết quả âm bị loại; không còn bản ghi nào
// thì trả nil (phân biệt "không đo được" với "0 ngày").
func buildAvgResolutionDays(records []complaintmodels.Complaint) *float64 {
	sum := 0.0
	n := 0
	for _, record := range records {
		if record.UpdatedAt == 0 {
			continue
		}
		reaction, ok := ParseYMD(record.ReactionTime)
		if !ok {
			continue
		}
		updated := time.UnixMilli(record.UpdatedAt).UTC()
		days := math.Floor(updated.Sub(reaction).Hours() / 24)
		if days < 0 {
			continue
		}
		sum += days
		n++
	}
	if n == 0 {
		return nil
	}
	avg := math.Round(sum/float64(n)*10) / 10
	return &avg
}

// isCJK ký tự thuộc khối CJK Unified Ideographs
func isCJK(r rune) bool {
	return r >= 0x4E00 && r <= 0x9FFF
}

// isTokenRune ký tự được tính vào token: ASCII chữ/số hoặc chữ Hán
func isTokenRune(r rune) bool {
	if r >= '0' && r <= '9' {
		return true
	}
	if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' {
		return true
	}
	return isCJK(r)
}

// tokenizeCause tách chuỗi phân tích nguyên nhân thành token: mỗi run liên
// tiếp các ký tự hợp lệ là một token, lowercase với ASCII.
func tokenizeCause(text string) []string {
	var tokens []string
	var current []rune
	for _, r := range text {
		if isTokenRune(r) {
			current = append(current, r)
			continue
		}
		if len(current) > 0 {
			tokens = append(tokens, strings.ToLower(string(current)))
			current = current[:0]
		}
	}
	if len(current) > 0 {
		tokens = append(tokens, strings.ToLower(string(current)))
	}
	return tokens
}

// buildKeywordStats tần suất từ khóa trong cột phân tích nguyên nhân:
// token dưới 2 ký tự hoặc thuộc stop words bị loại, lấy tối đa 20 từ có
// tần suất cao nhất, tần suất bằng nhau xếp theo thứ tự gặp lần đầu.
func buildKeywordStats(records []complaintmodels.Complaint) []complaintdto.KeywordStat {
	counts := make(map[string]int)
	var order []string

	for _, record := range records {
		for _, token := range tokenizeCause(record.CauseAnalysis) {
			if len([]rune(token)) < 2 {
				continue
			}
			if _, stop := causeStopWords[token]; stop {
				continue
			}
			if _, seen := counts[token]; !seen {
				order = append(order, token)
			}
			counts[token]++
		}
	}

	entries := make([]complaintdto.KeywordStat, 0, len(order))
	for _, token := range order {
		entries = append(entries, complaintdto.KeywordStat{Keyword: token, Count: counts[token]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	if len(entries) > keywordLimit {
		entries = entries[:keywordLimit]
	}
	return entries
}

// buildMonthlyStats số khiếu nại theo tháng YYYY-MM, sắp tăng dần theo
// tháng, chỉ giữ 12 tháng gần nhất CÓ dữ liệu (tháng trống không chen vào).
func buildMonthlyStats(records []complaintmodels.Complaint) []complaintdto.MonthlyStat {
	counts := make(map[string]int)
	for _, record := range records {
		if len(record.ReactionTime) < 6 {
			continue
		}
		month := fmt.Sprintf("%s-%s", record.ReactionTime[:4], record.ReactionTime[4:6])
		counts[month]++
	}

	months := make([]string, 0, len(counts))
	for month := range counts {
		months = append(months, month)
	}
	sort.Strings(months)
	if len(months) > trendMonthLimit {
		months = months[len(months)-trendMonthLimit:]
	}

	out := make([]complaintdto.MonthlyStat, 0, len(months))
	for _, month := range months {
		out = append(out, complaintdto.MonthlyStat{Month: month, Count: counts[month]})
	}
	return out
}

// BuildComplaintStats tính toàn bộ thống kê trên tập record đã normalize và
// đã lọc. Thuần túy derive từ input, không đụng store.
func BuildComplaintStats(records []complaintmodels.Complaint) *complaintdto.ComplaintStats {
	cityGroups := groupCount(records, complaintmodels.SentinelUncategorized, func(r complaintmodels.Complaint) string { return r.City })
	machineGroups := groupCount(records, complaintmodels.SentinelUncategorized, func(r complaintmodels.Complaint) string { return r.ManufacturingMachine })
	channelGroups := groupCount(records, complaintmodels.SentinelUnknown, func(r complaintmodels.Complaint) string { return NormalizeChannel(r.PurchaseChannel) })
	statusGroups := groupCount(records, complaintmodels.SentinelUncategorized, func(r complaintmodels.Complaint) string { return r.ProductStatus })

	// Phân bố product/cause bị cắt top-N sau khi sắp xếp; các phân bố khác
	// giữ nguyên toàn bộ. Pareto chạy trên đúng tập đã cắt.
	productGroups := truncateGroups(
		groupCount(records, complaintmodels.SentinelUncategorized, func(r complaintmodels.Complaint) string { return r.ProductItem }),
		productTopLimit)
	causeGroups := truncateGroups(
		groupCount(records, complaintmodels.SentinelUncategorized, func(r complaintmodels.Complaint) string { return r.CauseAnalysis }),
		causeTopLimit)

	stats := &complaintdto.ComplaintStats{
		Total:             len(records),
		CityStats:         make([]complaintdto.CityStat, 0, len(cityGroups)),
		ProductStats:      make([]complaintdto.ProductStat, 0, len(productGroups)),
		MachineStats:      make([]complaintdto.MachineStat, 0, len(machineGroups)),
		ChannelStats:      make([]complaintdto.ChannelStat, 0, len(channelGroups)),
		StatusStats:       make([]complaintdto.StatusStat, 0, len(statusGroups)),
		CauseStats:        make([]complaintdto.CauseStat, 0, len(causeGroups)),
		ProductPareto:     buildPareto(productGroups, productTopLimit),
		CausePareto:       buildPareto(causeGroups, causeTopLimit),
		ShelfLifeStats:    buildShelfLifeStats(records),
		AvgResolutionDays: buildAvgResolutionDays(records),
		KeywordStats:      buildKeywordStats(records),
		MonthlyStats:      buildMonthlyStats(records),
	}

	for _, g := range cityGroups {
		stats.CityStats = append(stats.CityStats, complaintdto.CityStat{City: g.Key, Count: g.Count})
	}
	for _, g := range productGroups {
		stats.ProductStats = append(stats.ProductStats, complaintdto.ProductStat{Product: g.Key, Count: g.Count})
	}
	for _, g := range machineGroups {
		stats.MachineStats = append(stats.MachineStats, complaintdto.MachineStat{Machine: g.Key, Count: g.Count})
	}
	for _, g := range channelGroups {
		stats.ChannelStats = append(stats.ChannelStats, complaintdto.ChannelStat{Channel: g.Key, Count: g.Count})
	}
	for _, g := range statusGroups {
		stats.StatusStats = append(stats.StatusStats, complaintdto.StatusStat{Status: g.Key, Count: g.Count})
	}
	for _, g := range causeGroups {
		stats.CauseStats = append(stats.CauseStats, complaintdto.CauseStat{Cause: g.Key, Count: g.Count})
	}

	return stats
}
