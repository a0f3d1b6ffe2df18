package dashboard

import (
	"hekto/internal/customer"
)

// Metrics는 대시보드 뷰(View)에 전달될 집계 스냅샷입니다.
// (저장되지 않으며, 요청마다 조회 결과에서 새로 계산됩니다)
type Metrics struct {
	TotalUsers    int
	TotalProducts int
	TotalOrders   int
	TotalRevenue  float64
	PendingOrders int
	NewUsers      int
}

// Aggregate는 조회된 customer 목록을 Metrics로 환산하는 순수 함수입니다.
// 입력이 비어 있으면 모든 값이 0이며, 실패하는 경로가 없습니다.
func Aggregate(customers []customer.Customer) Metrics {
	var m Metrics

	// 1. 사용자 수 = 주문 수 (customer 문서 1건 = 주문 1건 규약)
	m.TotalUsers = len(customers)
	m.TotalOrders = len(customers)

	// 2. 상품 수와 매출 합계 (Price 타입이 비정상 값을 이미 0으로 보정)
	for _, cu := range customers {
		m.TotalProducts += len(cu.Items)
		for _, item := range cu.Items {
			m.TotalRevenue += float64(item.Price)
		}
	}

	// 3. pending/new는 별도 조회가 없어 주문 수/사용자 수의 별칭으로 정의합니다.
	m.PendingOrders = m.TotalOrders
	m.NewUsers = m.TotalUsers

	return m
}

// fetcher는 대시보드가 필요로 하는 조회 동작입니다. (*customer.Service가 구현)
type fetcher interface {
	FetchCustomers() []customer.Customer
}

// Service는 대시보드 데이터 조회를 담당합니다.
type Service struct {
	customers fetcher
}

// NewService는 대시보드 서비스를 생성합니다.
func NewService(customers fetcher) *Service {
	return &Service{customers: customers}
}

// GetMetrics는 customer 프로젝션 1회 조회로 전체 지표를 계산합니다.
func (s *Service) GetMetrics() Metrics {
	return Aggregate(s.customers.FetchCustomers())
}
