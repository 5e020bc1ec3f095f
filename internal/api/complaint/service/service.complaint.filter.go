package complaintsvc

import (
	"strings"

	complaintdto "complaint_hub/internal/api/complaint/dto"
	complaintmodels "complaint_hub/internal/api/complaint/models"
)

// normalizeCityName bỏ hậu tố cấp hành chính 市/縣 ở cuối tên để so khớp:
// 台北市 và 台北 được coi là cùng một thành phố.
func normalizeCityName(city string) string {
	city = strings.TrimSpace(city)
	city = strings.TrimSuffix(city, "市")
	city = strings.TrimSuffix(city, "縣")
	return city
}

// matchCity so khớp city của record với city trong filter: khớp khi
// giá trị đã bỏ hậu tố bằng nhau, hoặc giá trị raw bằng nhau.
func matchCity(recordCity, filterCity string) bool {
	if normalizeCityName(recordCity) == normalizeCityName(filterCity) {
		return true
	}
	return recordCity == filterCity
}

// reactionMonth lấy phần tháng (2 chữ số) từ reactionTime dạng YYYYMMDD
func reactionMonth(reactionTime string) string {
	if len(reactionTime) < 6 {
		return ""
	}
	return reactionTime[4:6]
}

// matchMonth so khớp tháng phản ánh với filter tháng, bỏ qua năm.
// Filter nhận một tháng đơn ("7") hoặc khoảng tháng "a~b" (bao cả hai đầu).
// Khoảng ngược (a > b) không khớp record nào.
func matchMonth(reactionTime, monthFilter string) bool {
	monthStr := reactionMonth(reactionTime)
	if monthStr == "" {
		return false
	}
	month := int(monthStr[0]-'0')*10 + int(monthStr[1]-'0')
	if month < 1 || month > 12 {
		return false
	}

	if from, to, ok := strings.Cut(monthFilter, "~"); ok {
		lo := parseMonth(from)
		hi := parseMonth(to)
		if lo == 0 || hi == 0 {
			return false
		}
		return month >= lo && month <= hi
	}

	want := parseMonth(monthFilter)
	return want != 0 && month == want
}

// parseMonth parse "7" hoặc "07" về 1..12, 0 khi không hợp lệ
func parseMonth(s string) int {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 2 {
		return 0
	}
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0
		}
		n = n*10 + int(r-'0')
	}
	if n < 1 || n > 12 {
		return 0
	}
	return n
}

// ApplyPostFetchFilters áp các điều kiện lọc cần chuẩn hóa lên tập record
// đã normalize. Các điều kiện store lọc được chính xác (machine, status,
// khoảng ngày) đã xử lý ở tầng query; ở đây chỉ còn city/product/month/channel.
func ApplyPostFetchFilters(records []complaintmodels.Complaint, filter *complaintdto.ComplaintFilter) []complaintmodels.Complaint {
	if filter == nil {
		return records
	}

	out := make([]complaintmodels.Complaint, 0, len(records))
	productFilter := strings.ToLower(strings.TrimSpace(filter.Product))

	// yearMonth đã lọc khoảng ngày ở tầng store và cụ thể hơn filter tháng
	// bỏ-qua-năm, nên khi có yearMonth thì month bị bỏ qua
	monthFilter := filter.Month
	if filter.YearMonth != "" {
		monthFilter = ""
	}

	for _, record := range records {
		if filter.City != "" && !matchCity(record.City, filter.City) {
			continue
		}
		if productFilter != "" && !strings.Contains(strings.ToLower(record.ProductItem), productFilter) {
			continue
		}
		if monthFilter != "" && !matchMonth(record.ReactionTime, monthFilter) {
			continue
		}
		if filter.Channel != "" && NormalizeChannel(record.PurchaseChannel) != filter.Channel {
			continue
		}
		out = append(out, record)
	}

	return out
}
