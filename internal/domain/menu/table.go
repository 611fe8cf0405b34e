package menu

import "github.com/jhoicas/easypalm-console/internal/domain/entity"

// ── Tabla de menús por rol ────────────────────────────────────────────────────
// Las etiquetas son las del producto (tailandés); Icon es el nombre del ícono del frontend.

var purchasingMenu = []entity.MenuSection{
	{
		Title: "ธุรกรรมจัดซื้อ",
		Items: []entity.MenuItem{
			{Icon: "ShoppingCartIcon", Label: "รับซื้อสินค้า", Path: "/purchasing/create-po"},
			{Icon: "ClockIcon", Label: "ประวัติการซื้อ", Path: "/purchasing/history"},
		},
	},
	{
		Title: "การจัดการ",
		Items: []entity.MenuItem{
			{Icon: "ScaleIcon", Label: "กำหนดราคารับซื้อ", Path: "/purchasing/prices"},
			{Icon: "UserGroupIcon", Label: "ข้อมูลเกษตรกร", Path: "/purchasing/farmers"},
			{Icon: "CircleStackIcon", Label: "ตรวจสอบ Stock", Path: "/purchasing/stock-summary"},
		},
	},
}

var warehouseMenu = []entity.MenuSection{
	{
		Title: "การรับสินค้า",
		Items: []entity.MenuItem{
			{Icon: "RectangleStackIcon", Label: "สินค้าที่รอจัดเก็บ", Path: "/warehouse/pending-storage"},
			{Icon: "ClipboardDocumentListIcon", Label: "ประวัติการจัดเก็บ", Path: "/warehouse/storage-history"},
		},
	},
	{
		Title: "การเบิกสินค้า",
		Items: []entity.MenuItem{
			{Icon: "TruckIcon", Label: "สินค้าที่รอเบิกจริง", Path: "/warehouse/pending-shipments"},
			{Icon: "ClipboardDocumentCheckIcon", Label: "ประวัติการเบิก", Path: "/warehouse/shipment-history"},
		},
	},
	{
		Title: "ภาพรวม",
		Items: []entity.MenuItem{
			{Icon: "ArchiveBoxIcon", Label: "สต็อกคงคลัง", Path: "/warehouse/stock"},
			{Icon: "BuildingStorefrontIcon", Label: "จัดการคลังสินค้า", Path: "/warehouse/management"},
		},
	},
}

var salesMenu = []entity.MenuSection{
	{
		Title: "ธุรกรรมการขาย",
		Items: []entity.MenuItem{
			{Icon: "ArrowUpOnSquareIcon", Label: "บันทึกคำสั่งขาย", Path: "/sales/create-so"},
			{Icon: "ClockIcon", Label: "ประวัติการขาย", Path: "/sales/history"},
			{Icon: "CheckBadgeIcon", Label: "ยืนยันการจัดส่ง", Path: "/sales/confirm-delivery"},
		},
	},
	{
		Title: "ข้อมูล",
		Items: []entity.MenuItem{
			{Icon: "BriefcaseIcon", Label: "ข้อมูลลูกค้า", Path: "/sales/customers"},
			{Icon: "ArchiveBoxIcon", Label: "ตรวจสอบ Stock", Path: "/sales/stock"},
		},
	},
}

var accountantMenu = []entity.MenuSection{
	{
		Title: "การเงิน",
		Items: []entity.MenuItem{
			{Icon: "DocumentTextIcon", Label: "จัดการชำระเงิน (ซื้อ)", Path: "/accountant/po-payments"},
			{Icon: "BanknotesIcon", Label: "ยืนยันการรับเงิน (ขาย)", Path: "/accountant/so-receipts"},
		},
	},
	{
		Title: "ประวัติ",
		Items: []entity.MenuItem{
			{Icon: "ClockIcon", Label: "ประวัติการซื้อ", Path: "/accountant/purchase-history"},
			{Icon: "ClockIcon", Label: "ประวัติการขาย", Path: "/accountant/sales-history"},
		},
	},
}

var executiveMenu = []entity.MenuSection{
	{
		Title: "ภาพรวม",
		Items: []entity.MenuItem{
			{Icon: "ChartPieIcon", Label: "Dashboard", Path: "/executive/dashboard"},
			{Icon: "PresentationChartLineIcon", Label: "รายงานกำไร-ขาดทุน", Path: "/executive/profit-loss"},
		},
	},
}

var adminDedicatedMenu = []entity.MenuSection{
	{
		Title: "ระบบ",
		Items: []entity.MenuItem{
			{Icon: "UsersIcon", Label: "จัดการพนักงาน", Path: "/admin/employees"},
		},
	},
}

// adminExtendedMenu incluye "จัดการคลังสินค้า", que el layout original marcaba para eliminar.
var adminExtendedMenu = []entity.MenuSection{
	{
		Title: "ระบบ",
		Items: []entity.MenuItem{
			{Icon: "FileText", Label: "ภาพรวมระบบ", Path: "/admin/dashboard"},
			{Icon: "Users", Label: "จัดการพนักงาน", Path: "/admin/employees"},
			{Icon: "DollarSign", Label: "จัดการราคาสินค้า", Path: "/products"},
			{Icon: "Users", Label: "จัดการคลังสินค้า", Path: "/admin/warehouse-management"},
		},
	},
}
