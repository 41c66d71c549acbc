package refdata

// competencyData maps (competency area, SFIA level) to a named level with a
// description. The table does not cover every combination — areas with sparse
// coverage fall back to a synthesized "<area> (Level N)" label at mapping time.
var competencyData = []CompetencyLevel{
	// Giải quyết vấn đề (Problem Solving)
	{CompetencyAreaName: "Giải quyết vấn đề (Problem Solving)", SFIALevel: 1, Name: "Nhận diện vấn đề đơn giản", Description: "Nhận ra vấn đề quen thuộc và làm theo hướng dẫn có sẵn để xử lý."},
	{CompetencyAreaName: "Giải quyết vấn đề (Problem Solving)", SFIALevel: 2, Name: "Xử lý vấn đề có hỗ trợ", Description: "Xử lý được các vấn đề thường gặp khi có người hướng dẫn và quy trình rõ ràng."},
	{CompetencyAreaName: "Giải quyết vấn đề (Problem Solving)", SFIALevel: 3, Name: "Giải quyết vấn đề độc lập", Description: "Tự phân tích và giải quyết các vấn đề trong phạm vi công việc của mình."},
	{CompetencyAreaName: "Giải quyết vấn đề (Problem Solving)", SFIALevel: 4, Name: "Phân rã vấn đề phức tạp", Description: "Phân rã vấn đề phức tạp thành các phần nhỏ, so sánh nhiều phương án và lựa chọn có căn cứ."},
	{CompetencyAreaName: "Giải quyết vấn đề (Problem Solving)", SFIALevel: 5, Name: "Tư vấn giải pháp", Description: "Tư vấn cách tiếp cận cho các bài toán liên nhóm, lường trước rủi ro và đánh đổi."},
	{CompetencyAreaName: "Giải quyết vấn đề (Problem Solving)", SFIALevel: 6, Name: "Dẫn dắt giải quyết vấn đề", Description: "Dẫn dắt việc giải quyết các vấn đề có ảnh hưởng rộng, thiết lập phương pháp chung cho tổ chức."},
	{CompetencyAreaName: "Giải quyết vấn đề (Problem Solving)", SFIALevel: 7, Name: "Định hình phương pháp luận", Description: "Định hình phương pháp luận giải quyết vấn đề ở cấp chiến lược, tạo ảnh hưởng ngoài tổ chức."},

	// Kiến thức nền tảng AI (AI Fundamentals)
	{CompetencyAreaName: "Kiến thức nền tảng AI (AI Fundamentals)", SFIALevel: 1, Name: "Nhận biết khái niệm AI", Description: "Biết các khái niệm AI cơ bản và phân biệt được AI với phần mềm thông thường."},
	{CompetencyAreaName: "Kiến thức nền tảng AI (AI Fundamentals)", SFIALevel: 2, Name: "Hiểu các hướng tiếp cận chính", Description: "Hiểu sự khác nhau giữa học có giám sát, không giám sát và học tăng cường ở mức khái quát."},
	{CompetencyAreaName: "Kiến thức nền tảng AI (AI Fundamentals)", SFIALevel: 3, Name: "Vận dụng kiến thức nền tảng", Description: "Vận dụng kiến thức nền tảng để đọc hiểu tài liệu kỹ thuật và trao đổi với đội ngũ chuyên môn."},
	{CompetencyAreaName: "Kiến thức nền tảng AI (AI Fundamentals)", SFIALevel: 4, Name: "Đánh giá tính khả thi", Description: "Đánh giá được tính khả thi của một bài toán AI dựa trên dữ liệu, chi phí và giới hạn công nghệ."},
	{CompetencyAreaName: "Kiến thức nền tảng AI (AI Fundamentals)", SFIALevel: 5, Name: "Tư vấn định hướng công nghệ", Description: "Tư vấn lựa chọn hướng tiếp cận AI phù hợp cho từng lớp bài toán của tổ chức."},
	{CompetencyAreaName: "Kiến thức nền tảng AI (AI Fundamentals)", SFIALevel: 6, Name: "Dẫn dắt năng lực AI", Description: "Xây dựng và dẫn dắt chương trình phát triển năng lực AI cho đội ngũ."},
	{CompetencyAreaName: "Kiến thức nền tảng AI (AI Fundamentals)", SFIALevel: 7, Name: "Định hình chiến lược AI", Description: "Định hình chiến lược AI dài hạn, dự báo xu hướng và dẫn dắt thay đổi ở quy mô tổ chức."},

	// Học máy (Machine Learning)
	{CompetencyAreaName: "Học máy (Machine Learning)", SFIALevel: 1, Name: "Nhận biết thuật toán cơ bản", Description: "Kể tên và mô tả sơ lược một vài thuật toán học máy phổ biến."},
	{CompetencyAreaName: "Học máy (Machine Learning)", SFIALevel: 2, Name: "Chạy thử mô hình có sẵn", Description: "Huấn luyện lại mô hình theo ví dụ mẫu với sự hỗ trợ của người có kinh nghiệm."},
	{CompetencyAreaName: "Học máy (Machine Learning)", SFIALevel: 3, Name: "Huấn luyện mô hình độc lập", Description: "Tự xây dựng pipeline huấn luyện và đánh giá mô hình cho bài toán quen thuộc."},
	{CompetencyAreaName: "Học máy (Machine Learning)", SFIALevel: 4, Name: "Tối ưu và chẩn đoán mô hình", Description: "Chẩn đoán lỗi mô hình, tinh chỉnh siêu tham số và cải thiện chất lượng một cách có hệ thống."},
	{CompetencyAreaName: "Học máy (Machine Learning)", SFIALevel: 5, Name: "Thiết kế giải pháp học máy", Description: "Thiết kế giải pháp học máy trọn vẹn cho bài toán mới, cân nhắc dữ liệu, chi phí và vận hành."},
	{CompetencyAreaName: "Học máy (Machine Learning)", SFIALevel: 6, Name: "Dẫn dắt nhóm học máy", Description: "Dẫn dắt nhiều dự án học máy song song, thiết lập chuẩn mực kỹ thuật cho đội ngũ."},
	{CompetencyAreaName: "Học máy (Machine Learning)", SFIALevel: 7, Name: "Đóng góp tri thức mới", Description: "Đóng góp phương pháp hoặc công trình có ảnh hưởng tới cộng đồng học máy."},

	// Lập trình (Programming)
	{CompetencyAreaName: "Lập trình (Programming)", SFIALevel: 1, Name: "Viết mã theo mẫu", Description: "Viết được đoạn mã ngắn theo ví dụ có sẵn, hiểu cú pháp cơ bản."},
	{CompetencyAreaName: "Lập trình (Programming)", SFIALevel: 2, Name: "Hoàn thành tác vụ nhỏ", Description: "Hoàn thành các tác vụ lập trình nhỏ có mô tả rõ ràng, biết dùng công cụ quản lý mã nguồn."},
	{CompetencyAreaName: "Lập trình (Programming)", SFIALevel: 3, Name: "Phát triển tính năng độc lập", Description: "Tự phát triển tính năng hoàn chỉnh, viết kiểm thử và xử lý lỗi chủ động."},
	{CompetencyAreaName: "Lập trình (Programming)", SFIALevel: 4, Name: "Thiết kế cấu trúc mã", Description: "Thiết kế cấu trúc mã dễ bảo trì, rà soát mã cho người khác và tối ưu hiệu năng khi cần."},
	{CompetencyAreaName: "Lập trình (Programming)", SFIALevel: 5, Name: "Định chuẩn kỹ thuật", Description: "Thiết lập chuẩn mã nguồn, kiến trúc dịch vụ và hướng dẫn kỹ thuật cho nhóm."},
	{CompetencyAreaName: "Lập trình (Programming)", SFIALevel: 6, Name: "Kiến trúc hệ thống lớn", Description: "Chịu trách nhiệm kiến trúc cho hệ thống lớn, nhiều nhóm cùng phát triển."},
	{CompetencyAreaName: "Lập trình (Programming)", SFIALevel: 7, Name: "Ảnh hưởng toàn ngành", Description: "Tạo ra công cụ, thư viện hoặc chuẩn mực được sử dụng rộng rãi ngoài tổ chức."},

	// Tư duy phản biện (Critical Thinking) — mức giữa thang
	{CompetencyAreaName: "Tư duy phản biện (Critical Thinking)", SFIALevel: 3, Name: "Đánh giá thông tin có hệ thống", Description: "Đối chiếu nhiều nguồn thông tin, nhận ra giả định ngầm trong lập luận."},
	{CompetencyAreaName: "Tư duy phản biện (Critical Thinking)", SFIALevel: 4, Name: "Phản biện có cấu trúc", Description: "Xây dựng lập luận phản biện chặt chẽ, phân biệt tương quan và nhân quả khi đọc kết quả."},
	{CompetencyAreaName: "Tư duy phản biện (Critical Thinking)", SFIALevel: 5, Name: "Định hướng tư duy cho nhóm", Description: "Giúp nhóm tránh các bẫy tư duy phổ biến, chuẩn hóa cách đánh giá bằng tiêu chí rõ ràng."},

	// Học tập liên tục (Continuous Learning)
	{CompetencyAreaName: "Học tập liên tục (Continuous Learning)", SFIALevel: 3, Name: "Tự học có kế hoạch", Description: "Duy trì kế hoạch học tập cá nhân, áp dụng được kiến thức mới vào công việc."},
	{CompetencyAreaName: "Học tập liên tục (Continuous Learning)", SFIALevel: 4, Name: "Cập nhật và chọn lọc", Description: "Theo dõi xu hướng mới, đánh giá chọn lọc trước khi áp dụng vào dự án."},
	{CompetencyAreaName: "Học tập liên tục (Continuous Learning)", SFIALevel: 5, Name: "Lan tỏa việc học", Description: "Tổ chức chia sẻ kiến thức định kỳ, xây dựng văn hóa học tập trong nhóm."},

	// Học sâu (Deep Learning)
	{CompetencyAreaName: "Học sâu (Deep Learning)", SFIALevel: 3, Name: "Sử dụng kiến trúc có sẵn", Description: "Huấn luyện và tinh chỉnh các kiến trúc học sâu phổ biến cho bài toán chuẩn."},
	{CompetencyAreaName: "Học sâu (Deep Learning)", SFIALevel: 4, Name: "Tùy biến kiến trúc", Description: "Tùy biến kiến trúc mạng, hiểu rõ ảnh hưởng của từng thành phần tới kết quả."},
	{CompetencyAreaName: "Học sâu (Deep Learning)", SFIALevel: 5, Name: "Thiết kế giải pháp học sâu", Description: "Lựa chọn và thiết kế giải pháp học sâu phù hợp với ràng buộc dữ liệu và hạ tầng."},

	// Xử lý dữ liệu (Data Processing)
	{CompetencyAreaName: "Xử lý dữ liệu (Data Processing)", SFIALevel: 3, Name: "Xây dựng pipeline dữ liệu", Description: "Tự xây dựng pipeline thu thập, làm sạch và biến đổi dữ liệu cho dự án."},
	{CompetencyAreaName: "Xử lý dữ liệu (Data Processing)", SFIALevel: 4, Name: "Đảm bảo chất lượng dữ liệu", Description: "Thiết lập kiểm tra chất lượng dữ liệu, phát hiện và xử lý dữ liệu bất thường có hệ thống."},
	{CompetencyAreaName: "Xử lý dữ liệu (Data Processing)", SFIALevel: 5, Name: "Thiết kế nền tảng dữ liệu", Description: "Thiết kế quy trình và nền tảng dữ liệu phục vụ nhiều dự án AI cùng lúc."},

	// Triển khai mô hình (Model Deployment)
	{CompetencyAreaName: "Triển khai mô hình (Model Deployment)", SFIALevel: 3, Name: "Triển khai theo quy trình", Description: "Đóng gói và triển khai mô hình lên môi trường thực tế theo quy trình có sẵn."},
	{CompetencyAreaName: "Triển khai mô hình (Model Deployment)", SFIALevel: 4, Name: "Vận hành và giám sát", Description: "Thiết lập giám sát chất lượng mô hình sau triển khai, xử lý suy giảm hiệu năng."},
	{CompetencyAreaName: "Triển khai mô hình (Model Deployment)", SFIALevel: 5, Name: "Chuẩn hóa quy trình MLOps", Description: "Xây dựng quy trình triển khai, kiểm soát phiên bản và tự động hóa cho toàn nhóm."},

	// Kỹ thuật prompt (Prompt Engineering)
	{CompetencyAreaName: "Kỹ thuật prompt (Prompt Engineering)", SFIALevel: 3, Name: "Thiết kế prompt hiệu quả", Description: "Thiết kế prompt có cấu trúc, biết dùng ví dụ và ràng buộc định dạng đầu ra."},
	{CompetencyAreaName: "Kỹ thuật prompt (Prompt Engineering)", SFIALevel: 4, Name: "Đánh giá và tinh chỉnh prompt", Description: "Xây dựng bộ tiêu chí đánh giá prompt, tinh chỉnh có hệ thống thay vì thử sai."},
	{CompetencyAreaName: "Kỹ thuật prompt (Prompt Engineering)", SFIALevel: 5, Name: "Thiết kế hệ thống prompt", Description: "Thiết kế chuỗi prompt và luồng tương tác phức tạp cho ứng dụng sản phẩm."},

	// Ứng dụng AI vào nghiệp vụ (AI Application)
	{CompetencyAreaName: "Ứng dụng AI vào nghiệp vụ (AI Application)", SFIALevel: 3, Name: "Áp dụng vào nghiệp vụ quen thuộc", Description: "Nhận diện và triển khai ứng dụng AI cho các nghiệp vụ trong phạm vi hiểu biết của mình."},
	{CompetencyAreaName: "Ứng dụng AI vào nghiệp vụ (AI Application)", SFIALevel: 4, Name: "Đo lường giá trị", Description: "Thiết kế chỉ số đo lường giá trị nghiệp vụ của giải pháp AI và dùng nó để ra quyết định."},
	{CompetencyAreaName: "Ứng dụng AI vào nghiệp vụ (AI Application)", SFIALevel: 5, Name: "Tư vấn chuyển đổi", Description: "Tư vấn lộ trình ứng dụng AI cho cả một mảng nghiệp vụ, ưu tiên theo tác động."},

	// Đạo đức AI (AI Ethics)
	{CompetencyAreaName: "Đạo đức AI (AI Ethics)", SFIALevel: 3, Name: "Áp dụng nguyên tắc đạo đức", Description: "Nhận diện rủi ro thiên lệch và quyền riêng tư trong dự án, áp dụng hướng dẫn hiện có."},
	{CompetencyAreaName: "Đạo đức AI (AI Ethics)", SFIALevel: 4, Name: "Đánh giá tác động", Description: "Chủ động đánh giá tác động xã hội của hệ thống AI và đề xuất biện pháp giảm thiểu."},
	{CompetencyAreaName: "Đạo đức AI (AI Ethics)", SFIALevel: 5, Name: "Xây dựng chuẩn mực", Description: "Xây dựng quy tắc và quy trình đánh giá đạo đức AI áp dụng cho toàn tổ chức."},

	// Giao tiếp & Trình bày (Communication)
	{CompetencyAreaName: "Giao tiếp & Trình bày (Communication)", SFIALevel: 3, Name: "Trình bày rõ ràng", Description: "Trình bày kết quả kỹ thuật mạch lạc cho đồng nghiệp cùng chuyên môn."},
	{CompetencyAreaName: "Giao tiếp & Trình bày (Communication)", SFIALevel: 4, Name: "Điều chỉnh theo đối tượng", Description: "Điều chỉnh nội dung và cách trình bày phù hợp với người nghe không chuyên."},
	{CompetencyAreaName: "Giao tiếp & Trình bày (Communication)", SFIALevel: 5, Name: "Thuyết phục và dẫn dắt", Description: "Dẫn dắt thảo luận với các bên liên quan, thuyết phục bằng dữ liệu và câu chuyện phù hợp."},
}
