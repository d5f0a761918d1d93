package sessions

// Identity 是一次请求解析出来的访问者身份：匿名，或者已登录的某个用户。
// 作为值显式传递，不放在任何全局状态里。
type Identity struct {
	userID        uint
	authenticated bool
}

func Anonymous() Identity {
	return Identity{}
}

func Authenticated(userID uint) Identity {
	return Identity{userID: userID, authenticated: true}
}

func (i Identity) IsAuthenticated() bool {
	return i.authenticated
}

// UserID 只在已认证时有意义，匿名身份返回 0
func (i Identity) UserID() uint {
	if !i.authenticated {
		return 0
	}
	return i.userID
}
