package skybonds

// Lot is a batch of identical bonds issued on a given day of the trading period.
//
// A Lot is immutable: price and overpayment are derived once by the
// LotFactory.
type Lot struct {
	order        int
	day          int
	price        Money   // bondsAmount bonds at the quoted price
	pricePercent Percent // quoted price of one bond, in percent of its rating
	name         string
	amount       int
	overpayment  Money // per bond, negative for a discount
}

func (l Lot) Order() int                 { return l.order }
func (l Lot) Day() int                   { return l.day }
func (l Lot) Price() Money               { return l.price }
func (l Lot) PricePercent() Percent      { return l.pricePercent }
func (l Lot) Name() string               { return l.name }
func (l Lot) Amount() int                { return l.amount }
func (l Lot) Overpayment() Money         { return l.overpayment }
func (l Lot) String() string             { return EncodeLot(l) }
func (l Lot) IsAffordable(b Money) bool  { return b.GreaterThanOrEqual(l.price) }
func (l Lot) compareOrder(other Lot) int { return l.order - other.order }

func (l Lot) MarshalJSON() ([]byte, error) {
	var w jsonObject
	w.Append("order", l.order)
	w.Append("day", l.day)
	w.Append("name", l.name)
	w.Append("pricePercent", l.pricePercent)
	w.Append("amount", l.amount)
	w.Append("price", l.price)
	w.Append("overpayment", l.overpayment)
	return w.MarshalJSON()
}

// LotFactory creates lots and numbers them in creation order.
//
// The zero value is ready to use: the first lot gets order 1. Use one factory
// per run.
type LotFactory struct {
	issued int
}

// Create creates a lot of 'amount' bonds quoted at 'pricePercent' of 'rating'.
func (f *LotFactory) Create(day int, pricePercent Percent, name string, amount int, rating Money) Lot {
	bondPrice := pricePercent.Of(rating)
	f.issued++
	return Lot{
		order:        f.issued,
		day:          day,
		price:        bondPrice.Mul(amount),
		pricePercent: pricePercent,
		name:         name,
		amount:       amount,
		overpayment:  bondPrice.Sub(rating),
	}
}

// Issued returns the number of lots created so far.
func (f *LotFactory) Issued() int { return f.issued }
