package dto

// LikeRequest 点赞 / 取消点赞请求
type LikeRequest struct {
	Username string `json:"username" binding:"required,min=1,max=25"`
	VideoID  int64  `json:"videoId" binding:"required,gt=0"`
}

// SubscriptionRequest 订阅 / 取消订阅请求
type SubscriptionRequest struct {
	SubscriberUsername   string `json:"subscriberUsername" binding:"required,min=1,max=25"`
	SubscribedToUsername string `json:"subscribedToUsername" binding:"required,min=1,max=25,nefield=SubscriberUsername"`
}

// ViewCreateRequest 播放记录，未登录用户可不带 username
type ViewCreateRequest struct {
	Username *string `json:"username" binding:"omitempty,min=1,max=25"`
	VideoID  int64   `json:"videoId" binding:"required,gt=0"`
}
