package constants

// 文章创建日期的展示格式（对应 "September 1, 2026" 这种）
const ArticleDateFormat = "January 2, 2006"
