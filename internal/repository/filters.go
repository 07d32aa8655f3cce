package repository

// 各实体列表查询的过滤条件。nil 表示不过滤，其余每种类型对应一个可用的过滤字段。

// VideoFilter 视频列表过滤：VideoByUsername | VideoByTitle
type VideoFilter interface {
	videoCondition() *Condition
}

// VideoByUsername 按上传者精确匹配
type VideoByUsername string

// VideoByTitle 按标题子串匹配，不区分大小写
type VideoByTitle string

func (f VideoByUsername) videoCondition() *Condition {
	return &Condition{Column: "username", Value: string(f)}
}

func (f VideoByTitle) videoCondition() *Condition {
	return &Condition{Column: "title", Value: string(f), Match: MatchContainsFold}
}

// CommentFilter 评论列表过滤：CommentByUsername | CommentByVideo
type CommentFilter interface {
	commentCondition() *Condition
}

type CommentByUsername string

type CommentByVideo int64

func (f CommentByUsername) commentCondition() *Condition {
	return &Condition{Column: "username", Value: string(f)}
}

func (f CommentByVideo) commentCondition() *Condition {
	return &Condition{Column: "video_id", Value: int64(f)}
}

// LikeFilter 点赞列表过滤：LikeByUsername | LikeByVideo
type LikeFilter interface {
	likeCondition() *Condition
}

type LikeByUsername string

type LikeByVideo int64

func (f LikeByUsername) likeCondition() *Condition {
	return &Condition{Column: "username", Value: string(f)}
}

func (f LikeByVideo) likeCondition() *Condition {
	return &Condition{Column: "video_id", Value: int64(f)}
}

// ViewFilter 播放记录过滤：ViewByUsername | ViewByVideo
type ViewFilter interface {
	viewCondition() *Condition
}

type ViewByUsername string

type ViewByVideo int64

func (f ViewByUsername) viewCondition() *Condition {
	return &Condition{Column: "username", Value: string(f)}
}

func (f ViewByVideo) viewCondition() *Condition {
	return &Condition{Column: "video_id", Value: int64(f)}
}

// SubscriptionFilter 订阅列表过滤：BySubscriber | BySubscribedTo
type SubscriptionFilter interface {
	subscriptionCondition() *Condition
}

// BySubscriber 某用户订阅了谁
type BySubscriber string

// BySubscribedTo 谁订阅了某用户
type BySubscribedTo string

func (f BySubscriber) subscriptionCondition() *Condition {
	return &Condition{Column: "s.subscriber_username", Value: string(f)}
}

func (f BySubscribedTo) subscriptionCondition() *Condition {
	return &Condition{Column: "s.subscribed_to_username", Value: string(f)}
}
