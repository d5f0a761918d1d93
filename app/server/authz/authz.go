package authz

import "inkwell-blog/app/server/sessions"

// Operation 是路由在执行任何写入之前必须申报的操作标签
type Operation int

const (
	OpArticleList Operation = iota
	OpArticleRead
	OpArticleCreate
	OpArticleUpdate
	OpArticleDelete
	OpCommentList
	OpCommentCreate
)

type DenyReason int

const (
	ReasonNone      DenyReason = iota
	ReasonMustLogin            // 需要先登录
	ReasonForbidden            // 已登录但不是站长
)

type Decision struct {
	Allowed bool
	Reason  DenyReason
}

// Guard 是全部访问控制的唯一决策点：纯函数，没有任何副作用，
// 相同的输入永远得到相同的结果。
type Guard struct {
	OwnerID uint // 配置指定的站长用户 ID ，不依赖建号顺序
}

func New(ownerID uint) *Guard {
	return &Guard{OwnerID: ownerID}
}

func (g *Guard) Authorize(id sessions.Identity, op Operation) Decision {
	switch op {
	case OpArticleCreate, OpArticleUpdate, OpArticleDelete:
		// 站长专属操作：除了已登录的站长本人，一律拒绝
		if id.IsAuthenticated() && id.UserID() == g.OwnerID {
			return Decision{Allowed: true}
		}
		return Decision{Allowed: false, Reason: ReasonForbidden}

	case OpCommentCreate:
		// 登录用户即可
		if !id.IsAuthenticated() {
			return Decision{Allowed: false, Reason: ReasonMustLogin}
		}
		return Decision{Allowed: true}

	default:
		// 其余操作（浏览）对所有人开放
		return Decision{Allowed: true}
	}
}
