package affiliates

// crWhitelist is the operator-maintained list of tagged Deriv CR accounts.
var crWhitelist = []string{
	"CR5499637", "CR5500382", "CR5529877", "CR5535613", "CR5544922", "CR5551288",
	"CR5552176", "CR5556284", "CR5556287", "CR5561483", "CR5563616", "CR5577880",
	"CR5585327", "CR5589802", "CR5592846", "CR5594968", "CR5595416", "CR5597602",
	"CR5605478", "CR5607701", "CR5616548", "CR5616657", "CR5617024", "CR5618746",
	"CR5634872", "CR5638055", "CR5658165", "CR5662243", "CR5681280", "CR5686151",
	"CR5693620", "CR5694136", "CR5729218", "CR5729228", "CR5729255", "CR5734377",
	"CR5734685", "CR5734864", "CR5751222", "CR5755906", "CR5784782", "CR5786213",
	"CR5786969", "CR5799865", "CR5799868", "CR5799916", "CR5822964", "CR5836935",
	"CR5836938", "CR5839647", "CR5839797", "CR5859465", "CR5864046", "CR5873762",
	"CR5881030", "CR5886556", "CR5890102", "CR5924066", "CR5930200", "CR5970531",
	"CR6007156", "CR6012579", "CR6012919", "CR6022355", "CR6024318", "CR6037913",
	"CR6043787", "CR6077426", "CR6086720", "CR6094490", "CR6102922", "CR6128596",
	"CR6135793", "CR6141138", "CR6141427", "CR6141685", "CR6142172", "CR6142245",
	"CR6143176", "CR6146767", "CR6146888", "CR6167387", "CR6172824", "CR6181075",
	"CR6181076", "CR6182660", "CR6194673", "CR6198415", "CR6209246", "CR6268178",
	"CR6283228", "CR6295186", "CR6299453", "CR6301714", "CR6313536", "CR6316942",
	"CR6316943", "CR6316945", "CR6321295", "CR6330598", "CR6341042", "CR6379985",
	"CR6399552", "CR6401733", "CR6403902", "CR6413389", "CR6423099", "CR6423523",
	"CR6462778", "CR6474692", "CR6487699", "CR6505876", "CR6520436", "CR6520451",
	"CR6523858", "CR6524558", "CR6528520", "CR6532131", "CR6532137", "CR6532275",
	"CR6610101", "CR6620010", "CR6653814", "CR6667537", "CR6669363", "CR6669366",
	"CR6675564", "CR6676337", "CR6676341", "CR6682471", "CR6691842", "CR6691852",
	"CR6710741", "CR6756501", "CR6756521", "CR6762445", "CR6772496", "CR6799617",
	"CR6800730", "CR6973584", "CR6978912", "CR6983840", "CR6984178", "CR6994219",
	"CR7016028", "CR7044018", "CR7052204", "CR7112762", "CR7114951", "CR7124896",
	"CR7237163", "CR7310563", "CR7380411", "CR7381612", "CR5217806", "CR5218145",
	"CR5247338", "CR5431311", "CR5455669", "CR5141478", "CR5466762", "CR6154878",
	"CR6514641", "CR7443452", "CR7462159", "CR7496923", "CR7514165", "CR7619347",
	"CR7625010", "CR7655242", "CR7707424", "CR7708242", "CR4965219", "CR4985194",
	"CR5053549", "CR5085020", "CR5076079", "CR5115383", "CR5127519", "CR5128799",
	"CR5128821", "CR5128906", "CR5108974", "CR5140335", "CR5140339", "CR5146592",
	"CR5146651", "CR5140283", "CR5150548", "CR5168586", "CR5182098", "CR5195948",
	"CR5195953", "CR5195954", "CR5208742", "CR5191512", "CR5191516", "CR5230088",
	"CR5242731", "CR5232901", "CR5304118", "CR5376438", "CR5383018", "CR5559722",
	"CR5576367", "CR5583683", "CR5747075", "CR5845914", "CR5851342", "CR5851788",
	"CR5882107", "CR6174976", "CR6200366", "CR6156707", "CR6158587", "CR6300261",
	"CR6352212", "CR6384361", "CR6399574", "CR6408968", "CR6439217", "CR6706694",
	"CR6771489", "CR6828268", "CR7283876", "CR7283878", "CR7383923", "CR7383924",
	"CR7383926", "CR5107260", "CR5107344", "CR5121522", "CR5124042", "CR5131270",
	"CR5131273", "CR5140709", "CR5145112", "CR5145144", "CR5150792", "CR5151132",
	"CR5152411", "CR5156334", "CR5168665", "CR5171621", "CR5171935", "CR5172416",
	"CR5174518", "CR5175283", "CR5175357", "CR5175623", "CR5176885", "CR5178412",
	"CR5183689", "CR5192564", "CR5192768", "CR5196405", "CR5201751", "CR5201863",
	"CR5208818", "CR5209139", "CR5211727", "CR5217038", "CR5217041", "CR5217294",
	"CR5217716", "CR5217841", "CR5218709", "CR5220504", "CR5221257", "CR5222812",
	"CR5224492", "CR5234722", "CR5250590", "CR5253563", "CR5253566", "CR5253922",
	"CR5268275", "CR5273673", "CR5273869", "CR5276090", "CR5276310", "CR5281994",
	"CR5283490", "CR5283554", "CR5283705", "CR5283721", "CR5291732", "CR5298913",
	"CR5299111", "CR5299430", "CR5303230", "CR5304735", "CR5305240", "CR5305810",
	"CR5310002", "CR5317151", "CR5321069", "CR5324653", "CR5325581", "CR5327120",
	"CR5328157", "CR5337678", "CR5337712", "CR5337783", "CR5337784", "CR5337791",
	"CR5337793", "CR5404655", "CR5421490", "CR5442253", "CR5442355", "CR5442531",
	"CR5442605", "CR5444280", "CR5445094", "CR5446889", "CR5466632", "CR5471054",
	"CR5477031", "CR5485897", "CR5487026", "CR5487767", "CR5487928", "CR5488506",
	"CR5491460", "CR3648598", "CR3654244", "CR3654335", "CR3762108", "CR3845409",
	"CR3925151", "CR4085158", "CR4090372", "CR4138661", "CR4210749", "CR4296364",
	"CR4373296", "CR4488218", "CR4583558", "CR4655132", "CR7792475", "CR7814776",
	"CR7816651", "CR7817244", "CR7818330", "CR5149678", "CR8010847", "CR8036589",
	"CR8047034", "CR8052255", "CR8581785", "CR8644473", "CR8648274", "CR8661054",
}
