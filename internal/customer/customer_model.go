package customer

import (
	"math"
	"strconv"
	"strings"
)

// Customer는 스토어의 'customer' 문서 하나이며, 주문 1건에 해당합니다.
type Customer struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	City     string `json:"city"`
	Address1 string `json:"address1"`
	Address2 string `json:"address2"`
	Items    []Item `json:"items"`
}

// Item은 Customer에 포함된 구매 품목입니다.
// (id는 부모 Customer 안에서만 유일합니다)
type Item struct {
	Name        string `json:"name"`
	ID          string `json:"id"`
	Description string `json:"description"`
	Price       Price  `json:"price"`
}

// Price는 숫자/숫자 문자열/null이 섞여 들어오는 price 필드의 관용 타입입니다.
// 숫자로 해석할 수 없는 값은 전부 0으로 취급합니다. (매출 합계는 NaN이 되면 안 됩니다)
type Price float64

// UnmarshalJSON은 어떤 입력에도 에러를 반환하지 않습니다.
func (p *Price) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))

	// null / 빈 값
	if s == "" || s == "null" {
		*p = 0
		return nil
	}

	// "100" 같은 따옴표 숫자 문자열 허용
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = strings.TrimSpace(s[1 : len(s)-1])
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		*p = 0
		return nil
	}

	*p = Price(v)
	return nil
}
