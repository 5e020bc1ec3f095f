package dto

// ComplaintFilter tham số lọc cho list/stats — value object theo request,
// không persist, không share giữa các request.
type ComplaintFilter struct {
	City      string `query:"city"`      // Tỉnh/thành, chấp nhận cả dạng đầy đủ (台北市) lẫn dạng ngắn (台北)
	Product   string `query:"product"`   // Keyword sản phẩm, so khớp contains không phân biệt hoa thường
	Machine   string `query:"machine"`   // Máy sản xuất, so khớp chính xác
	Channel   string `query:"channel"`   // Kênh mua hàng ĐÃ chuẩn hóa, so khớp sau khi normalize
	Status    string `query:"status"`    // Trạng thái sản phẩm, so khớp chính xác
	Month     string `query:"month"`     // Tháng đơn "7" hoặc khoảng "3~8" (1-12, không phân biệt năm)
	YearMonth string `query:"yearMonth"` // "YYYY-MM" hoặc khoảng "YYYY-MM~YYYY-MM"
	StartDate string `query:"startDate"` // YYYYMMDD (chấp nhận cả YYYY-MM-DD)
	EndDate   string `query:"endDate"`   // YYYYMMDD (chấp nhận cả YYYY-MM-DD)
	SortBy    string `query:"sortBy"`    // Field sắp xếp, mặc định createdAt
	SortOrder string `query:"sortOrder"` // asc/desc, mặc định desc
	Page      int    `query:"page"`      // Trang, mặc định 1
	Limit     int    `query:"limit"`     // Số bản ghi mỗi trang, mặc định 100
}

// CityStat một mục thống kê theo tỉnh/thành
type CityStat struct {
	City  string `json:"city"`
	Count int    `json:"count"`
}

// ProductStat một mục thống kê theo sản phẩm
type ProductStat struct {
	Product string `json:"product"`
	Count   int    `json:"count"`
}

// MachineStat một mục thống kê theo máy sản xuất
type MachineStat struct {
	Machine string `json:"machine"`
	Count   int    `json:"count"`
}

// ChannelStat một mục thống kê theo kênh mua hàng (đã chuẩn hóa)
type ChannelStat struct {
	Channel string `json:"channel"`
	Count   int    `json:"count"`
}

// StatusStat một mục thống kê theo trạng thái sản phẩm
type StatusStat struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// CauseStat một mục thống kê theo nguyên nhân
type CauseStat struct {
	Cause string `json:"cause"`
	Count int    `json:"count"`
}

// MonthlyStat số khiếu nại theo tháng YYYY-MM
type MonthlyStat struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

// ParetoEntry một mục trong phân tích Pareto: phần trăm tích lũy chạy trên
// danh sách đã sắp giảm dần theo count.
type ParetoEntry struct {
	Item                 string  `json:"item"`
	Count                int     `json:"count"`
	CumulativePercentage float64 `json:"cumulativePercentage"`
}

// ShelfLifeBucket một khoảng "số ngày từ phản ánh đến hết hạn"
type ShelfLifeBucket struct {
	Range string `json:"range"`
	Count int    `json:"count"`
}

// ShelfLifeStats phân bố shelf-life; Total chỉ đếm bản ghi có đủ hai ngày hợp lệ
type ShelfLifeStats struct {
	Total   int               `json:"total"`
	Buckets []ShelfLifeBucket `json:"buckets"`
}

// KeywordStat tần suất một từ khóa trong phân tích nguyên nhân
type KeywordStat struct {
	Keyword string `json:"keyword"`
	Count   int    `json:"count"`
}

// ComplaintStats bundle thống kê — derived data thuần túy, tính mới mỗi
// request, không cache, không mutate sau khi dựng.
type ComplaintStats struct {
	Total             int             `json:"total"`
	CityStats         []CityStat      `json:"cityStats"`
	ProductStats      []ProductStat   `json:"productStats"`
	MachineStats      []MachineStat   `json:"machineStats"`
	ChannelStats      []ChannelStat   `json:"channelStats"`
	StatusStats       []StatusStat    `json:"statusStats"`
	CauseStats        []CauseStat     `json:"causeStats"`
	ProductPareto     []ParetoEntry   `json:"productPareto"`
	CausePareto       []ParetoEntry   `json:"causePareto"`
	ShelfLifeStats    ShelfLifeStats  `json:"shelfLifeStats"`
	AvgResolutionDays *float64        `json:"avgResolutionDays"` // nil khi không có bản ghi hợp lệ — phân biệt với 0
	KeywordStats      []KeywordStat   `json:"keywordStats"`
	MonthlyStats      []MonthlyStat   `json:"monthlyStats"`
}
