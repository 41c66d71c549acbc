package refdata

// aspectData is the fixed universe of evaluation aspects. Every interview
// evaluation must cover each aspect exactly once.
var aspectData = []Aspect{
	{
		Name:                  "Tư duy phản biện (Critical Thinking)",
		Represent:             "CT",
		Dimension:             "Tư duy & Giải quyết vấn đề",
		Description:           "Khả năng phân tích, đánh giá thông tin một cách khách quan và đưa ra lập luận có căn cứ.",
		WeightWithinDimension: 0.4,
	},
	{
		Name:                  "Giải quyết vấn đề (Problem Solving)",
		Represent:             "PS",
		Dimension:             "Tư duy & Giải quyết vấn đề",
		Description:           "Khả năng xác định vấn đề, phân rã thành các phần nhỏ và lựa chọn giải pháp phù hợp.",
		WeightWithinDimension: 0.35,
	},
	{
		Name:                  "Học tập liên tục (Continuous Learning)",
		Represent:             "CL",
		Dimension:             "Tư duy & Giải quyết vấn đề",
		Description:           "Thói quen chủ động cập nhật kiến thức, công cụ và xu hướng mới trong lĩnh vực AI.",
		WeightWithinDimension: 0.25,
	},
	{
		Name:                  "Kiến thức nền tảng AI (AI Fundamentals)",
		Represent:             "AIF",
		Dimension:             "Kiến thức AI",
		Description:           "Hiểu biết về các khái niệm cốt lõi của trí tuệ nhân tạo, lịch sử phát triển và các hướng tiếp cận chính.",
		WeightWithinDimension: 0.3,
	},
	{
		Name:                  "Học máy (Machine Learning)",
		Represent:             "ML",
		Dimension:             "Kiến thức AI",
		Description:           "Kiến thức về các thuật toán học máy, quy trình huấn luyện và đánh giá mô hình.",
		WeightWithinDimension: 0.3,
	},
	{
		Name:                  "Học sâu (Deep Learning)",
		Represent:             "DL",
		Dimension:             "Kiến thức AI",
		Description:           "Hiểu biết về mạng nơ-ron, các kiến trúc học sâu hiện đại và phạm vi ứng dụng của chúng.",
		WeightWithinDimension: 0.2,
	},
	{
		Name:                  "Xử lý dữ liệu (Data Processing)",
		Represent:             "DP",
		Dimension:             "Kiến thức AI",
		Description:           "Kỹ năng thu thập, làm sạch, biến đổi và đánh giá chất lượng dữ liệu phục vụ huấn luyện mô hình.",
		WeightWithinDimension: 0.2,
	},
	{
		Name:                  "Lập trình (Programming)",
		Represent:             "PRG",
		Dimension:             "Kỹ năng kỹ thuật",
		Description:           "Khả năng viết mã rõ ràng, có cấu trúc và sử dụng thành thạo các thư viện, framework phục vụ AI.",
		WeightWithinDimension: 0.4,
	},
	{
		Name:                  "Triển khai mô hình (Model Deployment)",
		Represent:             "MD",
		Dimension:             "Kỹ năng kỹ thuật",
		Description:           "Kỹ năng đưa mô hình vào môi trường thực tế: đóng gói, phục vụ, giám sát và cập nhật.",
		WeightWithinDimension: 0.3,
	},
	{
		Name:                  "Kỹ thuật prompt (Prompt Engineering)",
		Represent:             "PE",
		Dimension:             "Kỹ năng kỹ thuật",
		Description:           "Khả năng thiết kế, tinh chỉnh và đánh giá prompt để khai thác hiệu quả các mô hình sinh.",
		WeightWithinDimension: 0.3,
	},
	{
		Name:                  "Ứng dụng AI vào nghiệp vụ (AI Application)",
		Represent:             "AIA",
		Dimension:             "Ứng dụng & Hợp tác",
		Description:           "Khả năng nhận diện bài toán nghiệp vụ phù hợp với AI và chuyển hóa thành giải pháp mang lại giá trị.",
		WeightWithinDimension: 0.3,
	},
	{
		Name:                  "Đạo đức AI (AI Ethics)",
		Represent:             "AIE",
		Dimension:             "Ứng dụng & Hợp tác",
		Description:           "Hiểu biết về thiên lệch, quyền riêng tư, tính minh bạch và trách nhiệm khi xây dựng hệ thống AI.",
		WeightWithinDimension: 0.25,
	},
	{
		Name:                  "Giao tiếp & Trình bày (Communication)",
		Represent:             "COM",
		Dimension:             "Ứng dụng & Hợp tác",
		Description:           "Khả năng truyền đạt ý tưởng kỹ thuật cho nhiều đối tượng và trình bày kết quả một cách thuyết phục.",
		WeightWithinDimension: 0.25,
	},
	{
		Name:                  "Làm việc nhóm (Teamwork)",
		Represent:             "TW",
		Dimension:             "Ứng dụng & Hợp tác",
		Description:           "Khả năng phối hợp hiệu quả trong nhóm đa chức năng, chia sẻ kiến thức và hỗ trợ đồng nghiệp.",
		WeightWithinDimension: 0.2,
	},
}
