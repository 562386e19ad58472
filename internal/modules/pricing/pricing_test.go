package pricing

import "testing"

func TestCompute(t *testing.T) {
	tests := []struct {
		name string
		in   QuoteInput
		want Quote
	}{
		{
			name: "standard below free-shipping threshold",
			in:   QuoteInput{Subtotal: 100, Delivery: DeliveryStandard, Payment: PaymentCard},
			want: Quote{
				Subtotal: 100, DiscountedSubtotal: 100,
				VAT: 15, ShippingFee: 37.5, GrandTotal: 152.5,
			},
		},
		{
			name: "standard at threshold ships free",
			in:   QuoteInput{Subtotal: 200, Delivery: DeliveryStandard, Payment: PaymentCard},
			want: Quote{
				Subtotal: 200, DiscountedSubtotal: 200,
				VAT: 30, ShippingFee: 0, GrandTotal: 230,
			},
		},
		{
			name: "express is flat regardless of subtotal",
			in:   QuoteInput{Subtotal: 1000, Delivery: DeliveryExpress, Payment: PaymentCard},
			want: Quote{
				Subtotal: 1000, DiscountedSubtotal: 1000,
				VAT: 150, ShippingFee: 48.75, GrandTotal: 1198.75,
			},
		},
		{
			name: "cod surcharge",
			in:   QuoteInput{Subtotal: 200, Delivery: DeliveryStandard, Payment: PaymentCOD},
			want: Quote{
				Subtotal: 200, DiscountedSubtotal: 200,
				VAT: 30, ShippingFee: 0, PaymentSurcharge: 7.5, GrandTotal: 237.5,
			},
		},
		{
			name: "loyalty discount shifts the shipping threshold",
			in:   QuoteInput{Subtotal: 200, LoyaltyDiscount: 50, Delivery: DeliveryStandard, Payment: PaymentCard},
			want: Quote{
				Subtotal: 200, LoyaltyDiscount: 50, DiscountedSubtotal: 150,
				VAT: 22.5, ShippingFee: 37.5, GrandTotal: 210,
			},
		},
		{
			name: "discount larger than subtotal clamps to zero",
			in:   QuoteInput{Subtotal: 40, LoyaltyDiscount: 100, Delivery: DeliveryStandard, Payment: PaymentCard},
			want: Quote{
				Subtotal: 40, LoyaltyDiscount: 100, DiscountedSubtotal: 0,
				VAT: 0, ShippingFee: 37.5, GrandTotal: 37.5,
			},
		},
		{
			name: "empty order",
			in:   QuoteInput{Delivery: DeliveryStandard, Payment: PaymentCard},
			want: Quote{ShippingFee: 37.5, GrandTotal: 37.5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(tt.in)
			if got != tt.want {
				t.Errorf("Compute(%+v)\n got %+v\nwant %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestCompute_Idempotent(t *testing.T) {
	in := QuoteInput{Subtotal: 123.45, LoyaltyDiscount: 10, Delivery: DeliveryExpress, Payment: PaymentCOD}
	first := Compute(in)
	for i := 0; i < 5; i++ {
		if got := Compute(in); got != first {
			t.Fatalf("Compute is not idempotent: %+v != %+v", got, first)
		}
	}
}

func TestValidMethods(t *testing.T) {
	if !ValidDelivery(DeliveryStandard) || !ValidDelivery(DeliveryExpress) {
		t.Error("known delivery methods rejected")
	}
	if ValidDelivery("drone") {
		t.Error("unknown delivery method accepted")
	}

	for _, m := range []PaymentMethod{PaymentCard, PaymentTabby, PaymentTamara, PaymentCOD} {
		if !ValidPayment(m) {
			t.Errorf("known payment method %s rejected", m)
		}
	}
	if ValidPayment("barter") {
		t.Error("unknown payment method accepted")
	}
}
