package models

type JudgeLoginRequest struct {
	JudgeID  string `json:"judge_id"`
	Password string `json:"password"`
}

type JudgeInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type JudgeLoginResponse struct {
	Success bool      `json:"success"`
	Judge   JudgeInfo `json:"judge"`
}

type AdminLoginRequest struct {
	Password string `json:"password"`
}

type AdminLoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}
