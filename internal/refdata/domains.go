package refdata

// domainData is the fixed set of industry contexts a development plan can target.
var domainData = []Domain{
	{
		Name:        "Y tế",
		Description: "Ứng dụng AI trong chẩn đoán hình ảnh, hỗ trợ điều trị, quản lý hồ sơ bệnh án và vận hành cơ sở y tế.",
	},
	{
		Name:        "Tài chính",
		Description: "Ứng dụng AI trong phân tích rủi ro, phát hiện gian lận, chấm điểm tín dụng và tư vấn đầu tư tự động.",
	},
	{
		Name:        "Giáo dục",
		Description: "Ứng dụng AI trong cá nhân hóa lộ trình học tập, trợ giảng ảo, chấm điểm tự động và phân tích kết quả học tập.",
	},
	{
		Name:        "Công nghệ thông tin",
		Description: "Ứng dụng AI trong phát triển phần mềm, vận hành hệ thống, kiểm thử tự động và hỗ trợ kỹ thuật.",
	},
	{
		Name:        "Đa lĩnh vực",
		Description: "Định hướng phát triển năng lực AI tổng quát, không gắn với một ngành cụ thể, phù hợp với vai trò tư vấn hoặc chuyển đổi số.",
	},
	{
		Name:        "Marketing",
		Description: "Ứng dụng AI trong phân khúc khách hàng, cá nhân hóa nội dung, tối ưu chiến dịch và phân tích hành vi người dùng.",
	},
	{
		Name:        "Thiết kế sáng tạo",
		Description: "Ứng dụng AI tạo sinh trong thiết kế hình ảnh, nội dung đa phương tiện và hỗ trợ quy trình sáng tạo.",
	},
	{
		Name:        "Phân tích nghiệp vụ (BA)",
		Description: "Ứng dụng AI trong thu thập yêu cầu, mô hình hóa quy trình, phân tích dữ liệu nghiệp vụ và hỗ trợ ra quyết định.",
	},
}
