package httputil

import "github.com/gin-gonic/gin"

// write はProblemDetailをGinレスポンスとして書き込む。
// abort指定時は後続のハンドラチェーンも打ち切る。
func write(c *gin.Context, problem *ProblemDetail, abort bool) {
	c.Header("Content-Type", ContentType)
	c.JSON(problem.Status, problem)
	if abort {
		c.Abort()
	}
}

// WriteError はProblemDetailをGinレスポンスとして書き込む。
func WriteError(c *gin.Context, problem *ProblemDetail) {
	write(c, problem, false)
}

// AbortWithError はProblemDetailを書き込み、リクエスト処理を中断する。
func AbortWithError(c *gin.Context, problem *ProblemDetail) {
	write(c, problem, true)
}
