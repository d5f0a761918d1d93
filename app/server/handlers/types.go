package handlers

// 手写的请求/响应结构，渲染层只读消费这些数据

type ErrorMessage struct {
	Message string `json:"message"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TokenResponse struct {
	Token  string `json:"token"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

type ArticleInput struct {
	Title    *string `json:"title"`
	Subtitle *string `json:"subtitle"`
	Body     *string `json:"body"`
	ImgURL   *string `json:"img_url"`
}

type ArticleInfo struct {
	ID       uint   `json:"id"`
	AuthorID uint   `json:"author_id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Body     string `json:"body"`
	ImgURL   string `json:"img_url"`
	Date     string `json:"date"`
}

type CommentInput struct {
	Text *string `json:"text"`
}

type CommentInfo struct {
	ID           uint   `json:"id"`
	AuthorID     uint   `json:"author_id"`
	ArticleID    uint   `json:"article_id"`
	Text         string `json:"text"`
	AuthorName   string `json:"author_name"`
	AuthorAvatar string `json:"author_avatar"`
}

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

type ContactResponse struct {
	Sent bool `json:"sent"`
}
